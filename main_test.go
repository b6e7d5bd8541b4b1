package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"TurtleBoard/internal/config"
	"TurtleBoard/internal/sketches"
	"TurtleBoard/internal/turtle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headlessConfig(t *testing.T, sketch string) config.Config {
	dir := t.TempDir()
	return config.Config{
		Frontend: config.FrontendHeadless,
		Sketch:   sketch,
		Canvas:   config.CanvasConfig{Width: 160, Height: 120},
		Frame:    config.FrameConfig{FPS: 60, Count: 20},
		Net:      config.NetConfig{Port: 8888},
		Export: config.ExportConfig{
			PNG: filepath.Join(dir, "out.png"),
			PDF: filepath.Join(dir, "out.pdf"),
		},
		Random: config.RandomConfig{Seed: 3},
	}
}

func TestRunHeadlessWritesEveryExport(t *testing.T) {
	for _, name := range sketches.Names() {
		t.Run(name, func(t *testing.T) {
			cfg := headlessConfig(t, name)
			require.NoError(t, runHeadless(cfg))

			for _, path := range []string{cfg.Export.PNG, cfg.Export.PDF} {
				info, err := os.Stat(path)
				require.NoError(t, err)
				assert.NotZero(t, info.Size())
			}
		})
	}
}

func TestRunHeadlessUnknownSketch(t *testing.T) {
	cfg := headlessConfig(t, "nope")
	assert.ErrorIs(t, runHeadless(cfg), sketches.ErrUnknownSketch)
}

func TestExportLines(t *testing.T) {
	cfg := headlessConfig(t, "square")
	cfg.Export.PNG = ""
	lines := []turtle.Line{{To: turtle.Point{X: 10, Y: 10}, Color: color.White}}

	require.NoError(t, exportLines(cfg, lines))
	_, err := os.Stat(cfg.Export.PDF)
	assert.NoError(t, err)
}
