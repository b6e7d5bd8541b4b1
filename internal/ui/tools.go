package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// NewToolbar builds the board's toolbar: clear own lines, export.
func NewToolbar(board *BoardWidget, shareLink string) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DeleteIcon(), board.ClearPaths),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			if board.OnExport != nil {
				board.OnExport()
			}
		}),
	)

	items := []fyne.CanvasObject{tb, widget.NewSeparator()}
	if shareLink != "" {
		link := widget.NewEntry()
		link.SetText(shareLink)
		link.Disable()
		items = append(items, widget.NewLabel("Share:"), link)
	}
	items = append(items, layout.NewSpacer())
	return container.NewHBox(items...)
}
