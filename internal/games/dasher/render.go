package dasher

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dasher/internal/core"
)

// Visual characters for rendering
const (
	PlayerBody   = '█'
	PlayerHead   = '◆'
	PlayerLeg1   = '╱'
	PlayerLeg2   = '╲'
	FinishChar   = '┃'
	GroundChar   = '═'
	StarChar     = '.'
	BuildingChar = '▒'
)

// nebulaGlyphs is the obstacle animation cycle, one glyph per sheet cell.
var nebulaGlyphs = []rune{'·', '∙', '•', 'o', 'O', '@', 'O', 'o'}

// viewport maps world pixels onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, worldW, worldH int) viewport {
	return viewport{
		sx: float64(dst.Width()) / float64(worldW),
		sy: float64(dst.Height()) / float64(worldH),
	}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return int(math.Floor(y * v.sy)) }

// cells converts a world box to the covered cell rectangle, at least 1x1.
func (v viewport) cells(r core.RectF) core.Rect {
	x0, y0 := v.col(r.X), v.row(r.Y)
	x1, y1 := v.col(r.Right()), v.row(r.Bottom())
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if !g.ShowsWorld() {
		if g.status == core.StatusWon {
			g.drawCenteredMessage(dst, "You Win!", fmt.Sprintf("Time %.1fs  |  R restart  Q quit", g.elapsed), core.ColorGreen)
		} else {
			g.drawCenteredMessage(dst, "Game Over!", fmt.Sprintf("Dodged %d  |  R restart  Q quit", g.score), core.ColorRed)
		}
		return
	}

	vp := newViewport(dst, g.cfg.World.Width, g.cfg.World.Height)

	g.drawScene(dst, vp)
	for _, o := range g.field.Obstacles() {
		g.drawObstacle(dst, vp, o)
	}
	g.drawPlayer(dst, vp)
	g.drawFinish(dst, vp)

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Dodged: %d/%d ", g.score, len(g.field.Obstacles())))

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorYellow)
	}
}

// drawScene renders the parallax layers back to front from the draw plan.
func (g *Game) drawScene(dst *core.Screen, vp viewport) {
	layers := g.scene.Layers()
	for _, p := range g.scene.DrawPlan() {
		l := layers[p.Layer]
		from := core.Max(0, vp.col(p.X))
		to := core.Min(dst.Width(), vp.col(p.X+l.Span))
		for cx := from; cx < to; cx++ {
			// Texture column under the cell centre, in unscaled texture pixels
			u := int(((float64(cx)+0.5)/vp.sx - p.X) / g.scene.Scale())
			drawLayerColumn(dst, l.Name, cx, u)
		}
	}
}

// drawLayerColumn draws one cell column of a layer's pattern.
func drawLayerColumn(dst *core.Screen, name string, cx, u int) {
	h := dst.Height()
	switch name {
	case "far":
		// Sparse stars in the upper half
		if u%23 == 0 {
			dst.SetColored(cx, (u/23)%core.Max(1, h/2), StarChar, core.ColorDarkGray)
		}
	case "mid":
		// Skyline of blocks with deterministic heights
		height := 1 + (u/16*7)%core.Max(1, h/3)
		for y := h - height - 1; y < h-1; y++ {
			dst.SetColored(cx, y, BuildingChar, core.ColorGray)
		}
	default:
		// Ground strip with a marker every 32 texture pixels
		r := GroundChar
		if u%32 == 0 {
			r = '╪'
		}
		dst.SetColored(cx, h-1, r, core.ColorBlue)
	}
}

// drawObstacle renders the visible core of a nebula with its current glyph.
func (g *Game) drawObstacle(dst *core.Screen, vp viewport, o Obstacle) {
	box := o.Bounds().Inset(g.collision.Padding)
	if box.Empty() {
		box = o.Bounds()
	}
	glyph := nebulaGlyphs[o.Index%len(nebulaGlyphs)]
	dst.DrawRect(vp.cells(box), glyph, core.ColorGreen)
}

// drawPlayer renders the player with a two-pose run cycle.
func (g *Game) drawPlayer(dst *core.Screen, vp viewport) {
	r := vp.cells(g.player.Bounds())
	dst.DrawRect(r, PlayerBody, core.ColorBrightWhite)
	dst.SetColored(r.Right()-1, r.Y, PlayerHead, core.ColorBrightYellow)

	if r.H < 2 {
		return
	}
	legs := r.Bottom() - 1
	for x := r.X; x < r.Right(); x++ {
		dst.Set(x, legs, ' ')
	}
	switch {
	case !g.player.Grounded(g.groundY):
		// In air - legs tucked
		dst.SetColored(r.X, legs, PlayerLeg1, core.ColorBrightWhite)
		dst.SetColored(r.X+1, legs, PlayerLeg2, core.ColorBrightWhite)
	case g.player.Index%2 == 0:
		dst.SetColored(r.X, legs, PlayerLeg1, core.ColorBrightWhite)
		dst.SetColored(r.Right()-1, legs, PlayerLeg2, core.ColorBrightWhite)
	default:
		dst.SetColored(r.X+r.W/2, legs, PlayerLeg1, core.ColorBrightWhite)
		dst.SetColored(r.Right()-1, legs, PlayerLeg2, core.ColorBrightWhite)
	}
}

// drawFinish renders the finish marker rising from the bottom of the world.
func (g *Game) drawFinish(dst *core.Screen, vp viewport) {
	x := vp.col(g.field.FinishX())
	top := vp.row(float64(g.cfg.World.Height) - g.cfg.Finish.MarkerHeight)
	dst.DrawVLine(x, top, core.Max(1, dst.Height()-top), FinishChar, core.ColorRed)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, title, c)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorDefault)
}
