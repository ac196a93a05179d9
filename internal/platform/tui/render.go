package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/geodash/internal/config"
	"github.com/vovakirdan/geodash/internal/core"
	"github.com/vovakirdan/geodash/internal/render"
)

const fillRune = '█'

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// buttonArea is the cell rectangle a button label was drawn into.
type buttonArea struct {
	id   render.ShapeID
	area core.Rect
}

// Rasterizer scales a world-space scene onto terminal cells. The world
// occupies every row but the last, which shows the ground line.
type Rasterizer struct {
	world   config.WorldConfig
	cols    int
	rows    int
	buttons []buttonArea
}

// NewRasterizer creates a rasterizer for the given world size.
func NewRasterizer(world config.WorldConfig) *Rasterizer {
	return &Rasterizer{world: world}
}

// Draw clears dst and rasterizes every primitive of the scene in order.
func (r *Rasterizer) Draw(scene *render.Scene, dst *core.Screen) {
	dst.Clear()
	r.buttons = r.buttons[:0]
	r.cols = dst.Width()
	r.rows = dst.Height() - 1
	if r.rows < 1 || r.cols < 1 {
		return
	}

	ground := core.Min(r.cellY(r.world.GroundY), r.rows)
	dst.DrawHLine(0, ground, r.cols, '─', core.ColorGray)

	for _, p := range scene.Primitives() {
		switch p.Kind {
		case render.PrimRect:
			r.fill(dst, p, func(x, y float64) bool {
				return x >= float64(p.Rect.X) && x < float64(p.Rect.Right()) &&
					y >= float64(p.Rect.Y) && y < float64(p.Rect.Bottom())
			})
		case render.PrimPolygon:
			r.fill(dst, p, func(x, y float64) bool {
				return insideConvex(p.Points, x, y)
			})
		case render.PrimText:
			text := p.Text
			if p.Size == render.TextLarge {
				text = spaced(text)
			}
			dst.DrawTextCentered(r.cellX(p.At.X), r.clampRow(r.cellY(p.At.Y)), text, p.Color)
		case render.PrimButton:
			label := "[ " + p.Text + " ]"
			c := p.Rect.Center()
			cx, cy := r.cellX(c.X), r.clampRow(r.cellY(c.Y))
			dst.DrawTextCentered(cx, cy, label, p.Color)
			n := len([]rune(label))
			r.buttons = append(r.buttons, buttonArea{
				id:   p.ID,
				area: core.NewRect(cx-n/2, cy, n, 1),
			})
		}
	}
}

// ButtonAt returns the button drawn at the given cell by the last Draw.
func (r *Rasterizer) ButtonAt(x, y int) (render.ShapeID, bool) {
	for i := len(r.buttons) - 1; i >= 0; i-- {
		if r.buttons[i].area.Contains(core.Point{X: x, Y: y}) {
			return r.buttons[i].id, true
		}
	}
	return "", false
}

// fill sets every cell whose center, mapped to world space, satisfies inside.
func (r *Rasterizer) fill(dst *core.Screen, p render.Primitive, inside func(x, y float64) bool) {
	b, ok := p.Bounds()
	if !ok {
		return
	}
	x0 := core.Max(r.cellX(b.X)-1, 0)
	x1 := core.Min(r.cellX(b.Right())+1, r.cols-1)
	y0 := core.Max(r.cellY(b.Y)-1, 0)
	y1 := core.Min(r.cellY(b.Bottom())+1, r.rows-1)

	for cy := y0; cy <= y1; cy++ {
		wy := (float64(cy) + 0.5) * float64(r.world.Height) / float64(r.rows)
		for cx := x0; cx <= x1; cx++ {
			wx := (float64(cx) + 0.5) * float64(r.world.Width) / float64(r.cols)
			if inside(wx, wy) {
				dst.SetColored(cx, cy, fillRune, p.Color)
			}
		}
	}
}

func (r *Rasterizer) cellX(wx int) int {
	return wx * r.cols / r.world.Width
}

func (r *Rasterizer) cellY(wy int) int {
	return wy * r.rows / r.world.Height
}

func (r *Rasterizer) clampRow(y int) int {
	return core.Clamp(y, 0, r.rows-1)
}

// insideConvex reports whether (x, y) lies inside or on a convex polygon.
func insideConvex(pts []core.Point, x, y float64) bool {
	if len(pts) < 3 {
		return false
	}
	var pos, neg bool
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		cross := (float64(b.X)-float64(a.X))*(y-float64(a.Y)) - (float64(b.Y)-float64(a.Y))*(x-float64(a.X))
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// spaced renders large text by spreading its letters.
func spaced(s string) string {
	runes := []rune(s)
	parts := make([]string, len(runes))
	for i, ch := range runes {
		parts[i] = string(ch)
	}
	return strings.Join(parts, " ")
}
