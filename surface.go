package flora

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface receives the draw calls issued by the simulation each tick. The
// engine consumes no return values; implementations are free to batch or
// discard. Alpha rides in Color.A.
type Surface interface {
	// Line strokes a segment from p0 to p1 with the given width in pixels.
	Line(p0, p1 Vec2, width float64, c Color)
	// Polygon fills the closed polygon described by pts. The outline may be
	// concave; it is filled with the non-zero rule.
	Polygon(pts []Vec2, c Color)
	// Circle fills a disk at center with the given radius.
	Circle(center Vec2, radius float64, c Color)
}

// whitePixel is a 1x1 white image used as the texture for all solid-color
// triangle geometry.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(Color{1, 1, 1, 1}.toRGBA())
}

// ImageSurface is the ebiten-backed Surface. Lines and circles go through
// the vector package; polygons are triangulated over whitePixel so concave
// leaf outlines fill correctly. Vertex and index buffers are reused across
// calls.
type ImageSurface struct {
	dst *ebiten.Image
	vs  []ebiten.Vertex
	is  []uint16
}

// NewImageSurface creates an ImageSurface with no target. Call SetTarget
// before issuing draws.
func NewImageSurface() *ImageSurface {
	return &ImageSurface{}
}

// SetTarget points the surface at the image subsequent draw calls render to.
func (s *ImageSurface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

// Line implements Surface.
func (s *ImageSurface) Line(p0, p1 Vec2, width float64, c Color) {
	vector.StrokeLine(s.dst,
		float32(p0.X), float32(p0.Y),
		float32(p1.X), float32(p1.Y),
		float32(width), c.toRGBA(), true)
}

// Circle implements Surface.
func (s *ImageSurface) Circle(center Vec2, radius float64, c Color) {
	vector.DrawFilledCircle(s.dst,
		float32(center.X), float32(center.Y), float32(radius),
		c.toRGBA(), true)
}

// Polygon implements Surface.
func (s *ImageSurface) Polygon(pts []Vec2, c Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])

	// Premultiplied vertex color over the white pixel.
	a := float32(c.A)
	cr := float32(c.R) * a
	cg := float32(c.G) * a
	cb := float32(c.B) * a
	for i := range s.vs {
		s.vs[i].SrcX = 0.5
		s.vs[i].SrcY = 0.5
		s.vs[i].ColorR = cr
		s.vs[i].ColorG = cg
		s.vs[i].ColorB = cb
		s.vs[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	}
	s.dst.DrawTriangles(s.vs, s.is, whitePixel, op)
}
