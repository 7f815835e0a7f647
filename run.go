package flora

import (
	"io"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window and simulation created by Run.
type RunConfig struct {
	// Title is the window title. Defaults to "Flora".
	Title string
	// Width and Height are the fixed viewport size. Default 1920x1080.
	Width, Height int
	// TickRate is the fixed simulation rate in ticks per second. Default 60.
	TickRate int
	// Seed drives all randomness: tree build, shake jitter, sparkle spawns.
	Seed int64
	// Provider supplies per-tick band energies. Defaults to the synthetic
	// waveform when nil.
	Provider Provider
	// ShowLevels draws the level-bar HUD over the scene.
	ShowLevels bool
}

// Run opens a window and drives the visualizer until the window closes or
// Escape is pressed. If the provider implements io.Closer it is closed on
// every exit path.
func Run(cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = "Flora"
	}
	if cfg.Width <= 0 {
		cfg.Width = 1920
	}
	if cfg.Height <= 0 {
		cfg.Height = 1080
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Provider == nil {
		cfg.Provider = NewSynthetic(cfg.TickRate)
	}
	if closer, ok := cfg.Provider.(io.Closer); ok {
		defer closer.Close()
	}

	viz := NewVisualizer(cfg.Provider, DefaultPlantConfig(cfg.Width, cfg.Height), cfg.TickRate, cfg.Seed)
	g := &game{
		viz:        viz,
		layer:      ebiten.NewImage(cfg.Width, cfg.Height),
		surface:    NewImageSurface(),
		width:      cfg.Width,
		height:     cfg.Height,
		showLevels: cfg.ShowLevels,
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TickRate)
	return ebiten.RunGame(g)
}

// game adapts a Visualizer to the ebiten game loop and composites the scene
// layer at the shake offset.
type game struct {
	viz           *Visualizer
	layer         *ebiten.Image
	surface       *ImageSurface
	width, height int
	showLevels    bool
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.viz.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor.toRGBA())

	g.layer.Clear()
	g.surface.SetTarget(g.layer)
	g.viz.Draw(g.surface)

	// Shake moves the composited scene layer only. The HUD below is drawn
	// directly on the screen and stays put.
	op := &ebiten.DrawImageOptions{}
	shake := g.viz.Shake()
	op.GeoM.Translate(shake.X, shake.Y)
	screen.DrawImage(g.layer, op)

	if g.showLevels {
		drawLevelBars(screen, g.viz.CurrentLevels())
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
