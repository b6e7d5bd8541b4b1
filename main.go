package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"TurtleBoard/internal/config"
	"TurtleBoard/internal/export"
	"TurtleBoard/internal/game"
	tnet "TurtleBoard/internal/net"
	"TurtleBoard/internal/sketches"
	"TurtleBoard/internal/state"
	"TurtleBoard/internal/turtle"
	"TurtleBoard/internal/ui"
)

const discoverArg = "discover"

// surface is what every interactive frontend offers a sketch.
type surface interface {
	turtle.Canvas
	turtle.FrameHost
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Frontend == config.FrontendHeadless {
		if err := runHeadless(cfg); err != nil {
			log.Fatalf("Headless render failed: %v", err)
		}
		return
	}

	args := os.Args
	if len(args) > 1 {
		if addr, ok := tnet.ParseLink(args[1]); ok {
			runClient(cfg, addr)
			return
		}
		if args[1] == discoverArg {
			addr, err := tnet.Discover(3 * time.Second)
			if err != nil {
				log.Fatalf("Discovery failed: %v", err)
			}
			runClient(cfg, addr)
			return
		}
	}
	runHost(cfg)
}

func runHost(cfg config.Config) {
	log.Println("Starting as HOST")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	board := state.NewBoard()
	hub := tnet.NewHub(board)
	board.OnLocalOp = hub.Publish

	go func() {
		if err := hub.ListenAndServe(ctx, cfg.Net.Port); err != nil {
			log.Printf("[HOST] Server stopped: %v", err)
		}
	}()

	if cfg.Net.MDNS {
		server, err := tnet.Advertise(cfg.Net.Port)
		if err != nil {
			log.Printf("[MDNS] %v", err)
		} else {
			defer server.Shutdown()
		}
	}

	shareLink := tnet.ShareLink(tnet.OutgoingIP(), cfg.Net.Port)
	log.Printf("[HOST] Share link: %s", shareLink)
	openBoard(cfg, board, shareLink, nil)
}

func runClient(cfg config.Config, addr string) {
	log.Println("Starting as CLIENT")
	board := state.NewBoard()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	client, err := tnet.Dial(ctx, addr, board)
	cancel()
	if err != nil {
		log.Fatalf("Connection failed: %v", err)
	}
	defer client.Close()
	board.OnLocalOp = client.Publish

	openBoard(cfg, board, "", func(status func(string)) {
		status("Connected to host as " + client.LocalAddr())
		go func() {
			if err := client.Run(); err != nil {
				log.Printf("[CLIENT] %v", err)
				status(fmt.Sprintf("Disconnected from host: %v", err))
			}
		}()
	})
}

// openBoard sets the sketch up on the configured frontend, draws the other
// peers' lines every frame and blocks until the window closes.
func openBoard(cfg config.Config, board *state.Board, shareLink string, started func(status func(string))) {
	var recorders []*turtle.HistoryTurtle
	env := sketches.Env{
		OnLine:     func(l turtle.Line) { board.AddLocalLine(l) },
		OnRecorder: func(h *turtle.HistoryTurtle) { recorders = append(recorders, h) },
	}

	sk, err := sketches.Lookup(cfg.Sketch)
	if err != nil {
		log.Fatalf("Failed to load sketch: %v", err)
	}

	switch cfg.Frontend {
	case config.FrontendEbiten:
		g := game.New(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Random.Seed)
		setup(g, env, sk, board)
		if started != nil {
			started(func(s string) { log.Println(s) })
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		go func() {
			<-ctx.Done()
			g.Close()
		}()
		if err := g.Run(cfg.Canvas.Title, cfg.Frame.FPS); err != nil {
			log.Fatalf("Window failed: %v", err)
		}

	default:
		w := ui.NewBoardWidget(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Random.Seed)
		w.OnClear = func() {
			for _, h := range recorders {
				h.Clear()
			}
			w.ClearStatic()
			n := board.ClearLocal()
			w.SetStatus(fmt.Sprintf("Cleared %d lines", n))
		}
		w.OnExport = func() {
			if err := exportLines(cfg, w.Lines()); err != nil {
				log.Printf("[EXPORT] %v", err)
				w.SetStatus("Export failed")
				return
			}
			w.SetStatus("Exported " + cfg.Export.PDF)
		}
		setup(w, env, sk, board)
		if started != nil {
			started(w.SetStatus)
		}
		ui.RunApp(cfg.Canvas.Title, shareLink, w, cfg.FrameInterval())
	}
}

func setup(s surface, env sketches.Env, sk sketches.Sketch, board *state.Board) {
	env.Canvas = s
	env.Host = s
	s.RegisterDraw(func() { board.DrawRemote(s) })
	sk.Setup(env)
}

// runHeadless renders the sketch off screen into each configured export.
// Both canvases share the seed, so they draw the same picture.
func runHeadless(cfg config.Config) error {
	if cfg.Export.PNG != "" {
		c := export.NewPNGCanvas(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Random.Seed)
		if err := renderSketch(cfg, c, c); err != nil {
			return err
		}
		c.RunFrames(cfg.Frame.Count)
		if err := c.Save(cfg.Export.PNG); err != nil {
			return err
		}
	}
	if cfg.Export.PDF != "" {
		c := export.NewPDFCanvas(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Random.Seed)
		if err := renderSketch(cfg, c, c); err != nil {
			return err
		}
		c.RunFrames(cfg.Frame.Count)
		if err := c.Save(cfg.Export.PDF); err != nil {
			return err
		}
	}
	return nil
}

func renderSketch(cfg config.Config, c turtle.Canvas, host turtle.FrameHost) error {
	sk, err := sketches.Lookup(cfg.Sketch)
	if err != nil {
		return err
	}
	sk.Setup(sketches.Env{Canvas: c, Host: host})
	return nil
}

// exportLines writes what is on screen to the configured PDF and PNG files.
func exportLines(cfg config.Config, lines []turtle.Line) error {
	if cfg.Export.PDF != "" {
		pdf := export.NewPDFCanvas(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Random.Seed)
		for _, l := range lines {
			l.Draw(pdf)
		}
		if err := pdf.Save(cfg.Export.PDF); err != nil {
			return err
		}
	}
	if cfg.Export.PNG != "" {
		png := export.NewPNGCanvas(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Random.Seed)
		for _, l := range lines {
			l.Draw(png)
		}
		if err := png.Save(cfg.Export.PNG); err != nil {
			return err
		}
	}
	return nil
}
