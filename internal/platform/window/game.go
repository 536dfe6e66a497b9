// Package window runs the runner in a desktop window with ebiten, drawing
// the sprite sheets and parallax layers at their real pixel sizes.
package window

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/games/dasher"
	"github.com/vovakirdan/dasher/internal/storage"
)

// Options configures a window run. Game is required.
type Options struct {
	Game      *dasher.Game
	Title     string
	AssetsDir string // Sprite sheets; generated textures when empty
	TickRate  int    // Simulation ticks per second, 60 when zero
	Store     *storage.Store
	Logger    *log.Logger
	Muted     bool
}

var (
	skyColor   = color.RGBA{R: 16, G: 12, B: 32, A: 255}
	finishLine = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	loseColor  = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	winColor   = color.RGBA{R: 0, G: 228, B: 48, A: 255}
)

// game adapts a dasher.Game to ebiten.Game.
type game struct {
	run      *dasher.Game
	runtime  core.RuntimeConfig
	tex      *Textures
	sfx      *sounds
	face     *text.GoTextFaceSource
	store    *storage.Store
	logger   *log.Logger
	input    core.InputFrame
	state    core.GameState
	runSaved bool
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Game == nil {
		return errors.New("window: no game")
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("game", opts.Game.ID())

	face, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return fmt.Errorf("window: cannot load font: %w", err)
	}

	runtime := core.RuntimeConfig{TickRate: opts.TickRate}
	opts.Game.Reset(runtime)
	cfg := opts.Game.Config()
	runtime.ScreenW, runtime.ScreenH = cfg.World.Width, cfg.World.Height

	g := &game{
		run:     opts.Game,
		runtime: runtime,
		tex:     LoadTextures(opts.AssetsDir, cfg, logger),
		sfx:     newSounds(opts.Muted),
		face:    face,
		store:   opts.Store,
		logger:  logger,
		input:   core.NewInputFrame(),
		state:   opts.Game.State(),
	}
	defer g.release()

	title := opts.Title
	if title == "" {
		title = opts.Game.Title()
	}
	ebiten.SetWindowSize(cfg.World.Width, cfg.World.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(opts.TickRate)

	logger.Info("run started", "width", cfg.World.Width, "height", cfg.World.Height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func (g *game) release() {
	g.tex.Release()
	g.sfx.close()
}

// Update reads the keyboard and steps the simulation by one fixed tick.
func (g *game) Update() error {
	if ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.readKeys()
	defer g.input.Clear()

	if g.input.Has(core.ActionRestart) && g.state.GameOver {
		g.run.Reset(g.runtime)
		g.state = g.run.State()
		g.runSaved = false
		g.logger.Info("run restarted")
		return nil
	}

	result := g.run.Step(g.input, 1/float64(ebiten.TPS()))
	g.state = result.State
	g.sfx.play(result.Events)

	if g.state.GameOver && !g.runSaved {
		g.finishRun()
	}
	return nil
}

func (g *game) readKeys() {
	for _, k := range []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW} {
		if inpututil.IsKeyJustPressed(k) {
			g.input.Set(core.ActionJump)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.input.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.input.Set(core.ActionRestart)
	}
}

func (g *game) finishRun() {
	g.runSaved = true

	duration := time.Duration(g.state.Elapsed * float64(time.Second))
	g.logger.Info("run finished",
		"outcome", g.state.Status,
		"dodged", g.state.Score,
		"duration", duration.Round(time.Millisecond),
	)

	if g.store == nil {
		return
	}
	if _, err := g.store.SaveRun(storage.Run{
		GameID:   g.run.ID(),
		Outcome:  g.state.Status.String(),
		Score:    g.state.Score,
		Duration: duration,
	}); err != nil {
		g.logger.Warn("could not save run", "error", err)
	}
}

// Draw paints the layers back to front, then the obstacles, the finish
// line and the player, then the HUD. A finished run draws only the HUD.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	if !g.run.ShowsWorld() {
		g.drawHUD(screen)
		return
	}

	scene := g.run.Scene()
	scale := scene.Scale()
	for _, p := range scene.DrawPlan() {
		if p.Layer >= len(g.tex.Layers) {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(p.X, 0)
		screen.DrawImage(g.tex.Layers[p.Layer], op)
	}

	for _, o := range g.run.Obstacles() {
		drawSprite(screen, g.tex.Nebula, o.Frame)
	}

	cfg := g.run.Config()
	fx := float32(g.run.FinishX())
	h := float32(cfg.World.Height)
	vector.StrokeLine(screen, fx, h-float32(cfg.Finish.MarkerHeight), fx, h, 4, finishLine, false)

	drawSprite(screen, g.tex.Player, g.run.Player().Frame)

	g.drawHUD(screen)
}

// drawSprite draws the frame's current cell of sheet at the frame position.
func drawSprite(dst, sheet *ebiten.Image, f dasher.Frame) {
	src := image.Rect(
		int(f.Source.X), int(f.Source.Y),
		int(f.Source.X+f.Source.W), int(f.Source.Y+f.Source.H),
	)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(f.Pos.X, f.Pos.Y)
	dst.DrawImage(sheet.SubImage(src).(*ebiten.Image), op)
}

func (g *game) drawHUD(screen *ebiten.Image) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, fmt.Sprintf("Dodged %d", g.state.Score), &text.GoTextFace{Source: g.face, Size: 10}, op)

	var msg string
	var c color.Color
	switch {
	case g.state.Status == core.StatusLost:
		msg, c = "Game Over!", loseColor
	case g.state.Status == core.StatusWon:
		msg, c = "You Win!", winColor
	case g.state.Paused:
		msg, c = "Paused", color.White
	default:
		return
	}

	op = &text.DrawOptions{}
	op.GeoM.Translate(w/2, h/2-12)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, msg, &text.GoTextFace{Source: g.face, Size: 24}, op)

	if g.state.GameOver {
		op = &text.DrawOptions{}
		op.GeoM.Translate(w/2, h/2+24)
		op.ColorScale.ScaleWithColor(color.White)
		op.PrimaryAlign = text.AlignCenter
		text.Draw(screen, "R: Restart  Q: Quit", &text.GoTextFace{Source: g.face, Size: 10}, op)
	}
}

// Layout keeps the logical world size; ebiten scales it to the window.
func (g *game) Layout(_, _ int) (int, int) {
	return g.runtime.ScreenW, g.runtime.ScreenH
}
