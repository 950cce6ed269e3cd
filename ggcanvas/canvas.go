// Package ggcanvas renders a circlebutton.Button offscreen with the gogpu/gg
// software rasterizer, for snapshots and headless tests.
package ggcanvas

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/circlebutton"
)

// circleSegments is the number of perimeter points of a filled circle.
const circleSegments = 128

// Canvas is a circlebutton.Canvas over a gg.Context.
type Canvas struct {
	dc     *gg.Context
	source *text.FontSource
}

var _ circlebutton.Canvas = (*Canvas)(nil)

// New creates a width x height canvas with the embedded Go Regular font.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ggcanvas: invalid size %dx%d", width, height)
	}
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("ggcanvas: failed to parse default font: %w", err)
	}
	return &Canvas{dc: gg.NewContext(width, height), source: src}, nil
}

// Clear fills the canvas with c.
func (c *Canvas) Clear(col circlebutton.Color) {
	c.dc.ClearWithColor(gg.RGBA{R: col.R, G: col.G, B: col.B, A: col.A})
}

// FillCircle implements circlebutton.Canvas. The outline is sampled and
// each point mapped through m, so the tilt keeps its perspective.
func (c *Canvas) FillCircle(cx, cy, r float64, m circlebutton.Matrix, col circlebutton.Color) {
	if r <= 0 {
		return
	}
	if m.IsIdentity() {
		c.dc.DrawCircle(cx, cy, r)
	} else {
		for i := 0; i < circleSegments; i++ {
			sin, cos := math.Sincos(2 * math.Pi * float64(i) / circleSegments)
			x, y := m.Apply(cx+r*cos, cy+r*sin)
			if i == 0 {
				c.dc.MoveTo(x, y)
			} else {
				c.dc.LineTo(x, y)
			}
		}
		c.dc.ClosePath()
	}
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	if err := c.dc.Fill(); err != nil {
		circlebutton.Logger().Warn("ggcanvas: fill failed", "err", err)
	}
}

// FillText implements circlebutton.Canvas. gg draws text untransformed, so
// only the anchor goes through m.
func (c *Canvas) FillText(s string, x, y, size float64, m circlebutton.Matrix, col circlebutton.Color) {
	if size <= 0 {
		return
	}
	c.dc.SetFont(c.source.Face(size))
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	x, y = m.Apply(x, y)
	w, _ := c.dc.MeasureString(s)
	c.dc.DrawString(s, x-w/2, y)
}

// FontMetrics implements circlebutton.Canvas.
func (c *Canvas) FontMetrics(size float64) circlebutton.FontMetrics {
	if size <= 0 {
		return circlebutton.FontMetrics{}
	}
	fm := c.source.Face(size).Metrics()
	return circlebutton.FontMetrics{Ascent: fm.Ascent, Descent: fm.Descent, LineGap: fm.LineGap}
}

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the canvas to path.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("ggcanvas: save %s: %w", path, err)
	}
	return nil
}

// Close releases the context and the font source.
func (c *Canvas) Close() error {
	err := c.dc.Close()
	if serr := c.source.Close(); err == nil {
		err = serr
	}
	return err
}
