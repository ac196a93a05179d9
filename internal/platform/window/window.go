// Package window provides the desktop backend: an Ebitengine window drawing
// the scene with vector primitives at the world's native resolution.
package window

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/geodash/internal/config"
	"github.com/vovakirdan/geodash/internal/core"
	"github.com/vovakirdan/geodash/internal/platform/driver"
	"github.com/vovakirdan/geodash/internal/registry"
	"github.com/vovakirdan/geodash/internal/render"
)

const backendID = "window"

func init() {
	registry.Register(backendID, func() registry.Backend { return &Backend{} })
}

// Debug font cell size of ebitenutil.DebugPrint.
const (
	glyphW = 6
	glyphH = 16
)

var (
	background = color.RGBA{R: 0xf4, G: 0xf4, B: 0xf4, A: 0xff}

	palette = map[core.Color]color.RGBA{
		core.ColorDefault: {A: 0xff},
		core.ColorRed:     {R: 0xd0, G: 0x30, B: 0x30, A: 0xff},
		core.ColorGreen:   {R: 0x30, G: 0xa0, B: 0x40, A: 0xff},
		core.ColorYellow:  {R: 0xe0, G: 0xc0, B: 0x20, A: 0xff},
		core.ColorBlue:    {R: 0x30, G: 0x60, B: 0xd0, A: 0xff},
		core.ColorWhite:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		core.ColorGray:    {R: 0x70, G: 0x70, B: 0x70, A: 0xff},
	}
)

// game adapts the driver to ebiten.Game.
type game struct {
	ctx    context.Context
	driver *driver.Driver
	world  config.WorldConfig
	white  *ebiten.Image
	labels map[string]*ebiten.Image
}

func newGame(ctx context.Context, opts registry.RunOptions) *game {
	return &game{
		ctx:    ctx,
		driver: driver.New(opts),
		world:  opts.Game.World,
		labels: make(map[string]*ebiten.Image),
	}
}

// Update polls input, then advances one tick while the round is running.
func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	for _, a := range pollActions() {
		if a == core.ActionQuit {
			return ebiten.Termination
		}
		g.driver.Apply(a)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.driver.Click(core.Point{X: x, Y: y})
	}

	if g.driver.Running() {
		g.driver.Tick()
	}
	return nil
}

// pollActions returns the actions whose keys were pressed this frame.
func pollActions() []core.Action {
	bindings := []struct {
		action core.Action
		keys   []ebiten.Key
	}{
		{core.ActionJump, []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}},
		{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
		{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
		{core.ActionRestart, []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter}},
		{core.ActionQuit, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}},
	}

	var actions []core.Action
	for _, b := range bindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				actions = append(actions, b.action)
				break
			}
		}
	}
	return actions
}

// Draw renders the scene primitives in order.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	ground := float32(g.world.GroundY)
	vector.StrokeLine(screen, 0, ground, float32(g.world.Width), ground, 2, palette[core.ColorGray], false)

	for _, p := range g.driver.Scene().Primitives() {
		switch p.Kind {
		case render.PrimRect:
			r := p.Rect
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), palette[p.Color], false)
		case render.PrimPolygon:
			g.fillPolygon(screen, p.Points, palette[p.Color])
		case render.PrimText:
			g.drawLabel(screen, p.Text, p.At, p.Size == render.TextLarge)
		case render.PrimButton:
			r := p.Rect
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), palette[core.ColorGray], false)
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, palette[core.ColorDefault], false)
			g.drawLabel(screen, p.Text, r.Center(), false)
		}
	}
}

// fillPolygon fills a polygon through a vector path.
func (g *game) fillPolygon(screen *ebiten.Image, pts []core.Point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	if g.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		g.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(clr.R) / 0xff
		vs[i].ColorG = float32(clr.G) / 0xff
		vs[i].ColorB = float32(clr.B) / 0xff
		vs[i].ColorA = float32(clr.A) / 0xff
	}
	screen.DrawTriangles(vs, is, g.white, &ebiten.DrawTrianglesOptions{})
}

// drawLabel prints text centered on at. Large text is drawn at twice the size.
// The debug font is white on transparent, so labels are tinted dark.
func (g *game) drawLabel(screen *ebiten.Image, text string, at core.Point, large bool) {
	img, ok := g.labels[text]
	if !ok {
		img = ebiten.NewImage(len([]rune(text))*glyphW, glyphH)
		ebitenutil.DebugPrintAt(img, text, 0, 0)
		g.labels[text] = img
	}

	scale := 1.0
	if large {
		scale = 2
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(at.X)-float64(w)*scale/2, float64(at.Y)-float64(h)*scale/2)
	op.ColorScale.Scale(0.1, 0.1, 0.1, 1)
	screen.DrawImage(img, op)
}

// Layout fixes the logical screen to the world size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.world.Width, g.world.Height
}

// Backend opens a desktop window.
type Backend struct{}

// ID returns the backend identifier.
func (b *Backend) ID() string { return backendID }

// Title returns the display name.
func (b *Backend) Title() string { return "Desktop window (Ebitengine)" }

// Interactive reports whether the backend takes user input.
func (b *Backend) Interactive() bool { return true }

// Run opens the window and blocks until it is closed.
func (b *Backend) Run(ctx context.Context, opts registry.RunOptions) error {
	interval := opts.Runtime.TickInterval
	if interval <= 0 {
		interval = opts.Game.Tick.Interval()
	}

	ebiten.SetWindowTitle("Geodash")
	ebiten.SetWindowSize(opts.Game.World.Width, opts.Game.World.Height)
	ebiten.SetTPS(int(time.Second / interval))

	if err := ebiten.RunGame(newGame(ctx, opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
