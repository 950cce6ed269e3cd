package ebitenbutton

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/circlebutton"
)

// DefaultSegments is the number of perimeter vertices used for a circle.
const DefaultSegments = 96

// Canvas draws onto an *ebiten.Image. Circles are fan-triangulated and
// every vertex is mapped through the tilt matrix, so perspective is exact.
// Text uses the matrix linearized at the text anchor.
type Canvas struct {
	dst      *ebiten.Image
	source   *text.GoTextFaceSource
	segments int
	verts    []ebiten.Vertex
	inds     []uint16
}

var _ circlebutton.Canvas = (*Canvas)(nil)

// DefaultFontSource parses the embedded Go Regular font.
func DefaultFontSource() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitenbutton: failed to parse default font: %w", err)
	}
	return src, nil
}

// NewCanvas creates a canvas that draws text with source. A nil source
// disables text.
func NewCanvas(source *text.GoTextFaceSource) *Canvas {
	return &Canvas{source: source, segments: DefaultSegments}
}

// SetTarget sets the image drawn to by subsequent calls.
func (c *Canvas) SetTarget(dst *ebiten.Image) {
	c.dst = dst
}

// SetSegments sets the perimeter vertex count, minimum 8.
func (c *Canvas) SetSegments(n int) {
	if n < 8 {
		n = 8
	}
	c.segments = n
}

// FillCircle implements circlebutton.Canvas.
func (c *Canvas) FillCircle(cx, cy, r float64, m circlebutton.Matrix, col circlebutton.Color) {
	if c.dst == nil || r <= 0 {
		return
	}
	c.verts, c.inds = buildCircleFan(c.verts[:0], c.inds[:0], cx, cy, r, c.segments, m, col)
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	c.dst.DrawTriangles(c.verts, c.inds, ensureWhitePixel(), op)
}

// FillText implements circlebutton.Canvas.
func (c *Canvas) FillText(s string, x, y, size float64, m circlebutton.Matrix, col circlebutton.Color) {
	if c.dst == nil || c.source == nil || size <= 0 {
		return
	}
	face := &text.GoTextFace{Source: c.source, Size: size}
	fm := face.Metrics()

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	// text/v2 positions the top of the line box; move it so the baseline is y.
	op.GeoM.Translate(x, y-fm.HAscent)
	if !m.IsIdentity() {
		op.GeoM.Concat(geoM(m.AffineAt(x, y)))
	}
	op.ColorScale.ScaleWithColor(col.RGBA())
	text.Draw(c.dst, s, face, op)
}

// FontMetrics implements circlebutton.Canvas.
func (c *Canvas) FontMetrics(size float64) circlebutton.FontMetrics {
	if c.source == nil || size <= 0 {
		return circlebutton.FontMetrics{}
	}
	fm := (&text.GoTextFace{Source: c.source, Size: size}).Metrics()
	return circlebutton.FontMetrics{
		Ascent:  fm.HAscent,
		Descent: fm.HDescent,
		LineGap: fm.HLineGap,
	}
}

// buildCircleFan appends a fan-triangulated circle: vertex 0 is the hub,
// followed by segments perimeter vertices. All vertices go through m.
func buildCircleFan(verts []ebiten.Vertex, inds []uint16, cx, cy, r float64, segments int,
	m circlebutton.Matrix, col circlebutton.Color) ([]ebiten.Vertex, []uint16) {
	cr := float32(col.R * col.A)
	cg := float32(col.G * col.A)
	cb := float32(col.B * col.A)
	ca := float32(col.A)

	vertex := func(x, y float64) ebiten.Vertex {
		tx, ty := m.Apply(x, y)
		// Untextured: sample the center of the white pixel.
		return ebiten.Vertex{
			DstX: float32(tx), DstY: float32(ty),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}

	verts = append(verts, vertex(cx, cy))
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		sin, cos := math.Sincos(a)
		verts = append(verts, vertex(cx+r*cos, cy+r*sin))
	}
	for i := 0; i < segments; i++ {
		next := i + 2
		if next > segments {
			next = 1
		}
		inds = append(inds, 0, uint16(i+1), uint16(next))
	}
	return verts, inds
}

// geoM converts an affine transform to an ebiten.GeoM.
func geoM(a circlebutton.Affine) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, a.A)
	g.SetElement(0, 1, a.B)
	g.SetElement(0, 2, a.C)
	g.SetElement(1, 0, a.D)
	g.SetElement(1, 1, a.E)
	g.SetElement(1, 2, a.F)
	return g
}

// --- White pixel singleton (rendering is single-threaded) ---

var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
