package window

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"math"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/dasher/internal/config"
)

// Sprite sheet file names looked up in the assets directory.
const (
	PlayerSheetFile = "scarfy.png"
	NebulaSheetFile = "12_nebula_spritesheet.png"
)

// layerFiles maps scene layer names to their texture files.
var layerFiles = map[string]string{
	"far":  "far-buildings.png",
	"mid":  "back-buildings.png",
	"near": "foreground.png",
}

// Textures holds every image the window draws. Layers follow the scene's
// layer order.
type Textures struct {
	Player *ebiten.Image
	Nebula *ebiten.Image
	Layers []*ebiten.Image

	released bool
}

// LoadTextures loads the sprite sheets from dir. Files that are missing or
// unreadable are replaced by generated sheets with the configured geometry.
// An empty dir generates everything.
func LoadTextures(dir string, cfg config.DasherConfig, logger *log.Logger) *Textures {
	load := func(name string, fallback func() *ebiten.Image) *ebiten.Image {
		if dir == "" {
			return fallback()
		}
		path := filepath.Join(dir, name)
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				err = fmt.Errorf("window: cannot load %s: %w", path, err)
			}
			logger.Warn("using generated texture", "file", name, "error", err)
			return fallback()
		}
		return img
	}

	t := &Textures{
		Player: load(PlayerSheetFile, func() *ebiten.Image { return playerSheet(cfg.Player) }),
		Nebula: load(NebulaSheetFile, func() *ebiten.Image { return nebulaSheet(cfg.Obstacles) }),
	}

	layerH := int(math.Ceil(float64(cfg.World.Height) / math.Max(1, cfg.Scene.Scale)))
	for i, l := range cfg.Scene.Layers {
		file, ok := layerFiles[l.Name]
		if !ok {
			file = l.Name + ".png"
		}
		t.Layers = append(t.Layers, load(file, func() *ebiten.Image {
			return layerTexture(l, i, layerH)
		}))
	}

	return t
}

// Release frees the GPU memory of every texture. Safe to call more than once.
func (t *Textures) Release() {
	if t == nil || t.released {
		return
	}
	t.released = true

	t.Player.Deallocate()
	t.Nebula.Deallocate()
	for _, l := range t.Layers {
		l.Deallocate()
	}
}

var (
	skinColor   = color.RGBA{R: 240, G: 200, B: 160, A: 255}
	scarfColor  = color.RGBA{R: 210, G: 40, B: 60, A: 255}
	coatColor   = color.RGBA{R: 60, G: 90, B: 170, A: 255}
	nebulaInner = color.RGBA{R: 255, G: 230, B: 120, A: 255}
	nebulaOuter = color.RGBA{R: 230, G: 90, B: 40, A: 200}
)

// playerSheet draws a horizontal strip of run-cycle frames.
func playerSheet(pc config.PlayerConfig) *ebiten.Image {
	w, h := float32(pc.FrameWidth), float32(pc.FrameHeight)
	img := ebiten.NewImage(int(pc.FrameWidth)*pc.Frames, int(pc.FrameHeight))

	for i := 0; i < pc.Frames; i++ {
		x := float32(i) * w
		phase := float64(i) / float64(pc.Frames) * 2 * math.Pi
		stride := float32(math.Sin(phase)) * w * 0.12

		// Legs swing opposite each other
		vector.DrawFilledRect(img, x+w*0.40+stride, h*0.70, w*0.08, h*0.30, coatColor, false)
		vector.DrawFilledRect(img, x+w*0.52-stride, h*0.70, w*0.08, h*0.30, coatColor, false)
		vector.DrawFilledRect(img, x+w*0.36, h*0.38, w*0.28, h*0.34, coatColor, false)
		vector.DrawFilledRect(img, x+w*0.34, h*0.34, w*0.32, h*0.06, scarfColor, false)
		vector.DrawFilledCircle(img, x+w*0.50, h*0.24, w*0.11, skinColor, true)
	}
	return img
}

// nebulaSheet draws an 8x8 grid of pulsing blobs, one pulse step per column.
func nebulaSheet(oc config.ObstacleConfig) *ebiten.Image {
	cols := oc.Frames
	w, h := float32(oc.FrameWidth), float32(oc.FrameHeight)
	img := ebiten.NewImage(int(oc.FrameWidth)*cols, int(oc.FrameHeight)*cols)

	for row := 0; row < cols; row++ {
		for col := 0; col < cols; col++ {
			cx := float32(col)*w + w/2
			cy := float32(row)*h + h/2
			pulse := float32(0.75 + 0.25*math.Sin(float64(col)/float64(cols)*2*math.Pi))
			vector.DrawFilledCircle(img, cx, cy, w*0.45*pulse, nebulaOuter, true)
			vector.DrawFilledCircle(img, cx, cy, w*0.22*pulse, nebulaInner, true)
		}
	}
	return img
}

// layerTexture draws a tileable background strip. The index picks the style
// when the layer name is not one of the defaults.
func layerTexture(l config.LayerConfig, index, height int) *ebiten.Image {
	w := int(l.Width)
	img := ebiten.NewImage(w, height)
	fw, fh := float32(w), float32(height)

	style := l.Name
	if _, ok := layerFiles[style]; !ok {
		style = []string{"far", "mid", "near"}[index%3]
	}

	switch style {
	case "far":
		img.Fill(color.RGBA{R: 24, G: 20, B: 48, A: 255})
		for x := 7; x < w; x += 23 {
			y := float32((x * 37) % max(1, height/2))
			vector.DrawFilledRect(img, float32(x), y, 1, 1, color.White, false)
		}
	case "mid":
		for x := 0; x < w; x += 16 {
			bh := float32(20 + (x*7)%max(1, height/3))
			vector.DrawFilledRect(img, float32(x), fh-bh, 14, bh, color.RGBA{R: 50, G: 46, B: 80, A: 255}, false)
		}
	default:
		vector.DrawFilledRect(img, 0, fh-12, fw, 12, color.RGBA{R: 70, G: 60, B: 60, A: 255}, false)
		for x := 0; x < w; x += 32 {
			vector.DrawFilledRect(img, float32(x), fh-12, 2, 12, color.RGBA{R: 110, G: 96, B: 90, A: 255}, false)
		}
	}
	return img
}
