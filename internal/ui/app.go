package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

// RunApp opens the board window and renders frames until it is closed.
func RunApp(title, shareLink string, board *BoardWidget, frameInterval time.Duration) {
	myApp := app.New()
	myWindow := myApp.NewWindow(title)
	myWindow.Resize(fyne.NewSize(float32(board.Width()), float32(board.Height())+60))

	toolbar := NewToolbar(board, shareLink)
	content := container.NewBorder(toolbar, board.statusBar, nil, nil, board)
	myWindow.SetContent(content)

	stop := make(chan struct{})
	board.StartFrames(frameInterval, stop)
	defer close(stop)

	myWindow.ShowAndRun()
}
