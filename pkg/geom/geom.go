// Package geom provides the basic geometric types used by the choropleth
// layout engine: points, axis-aligned bounding boxes, and the shared frame
// derived from a set of region boxes.
package geom

// Point is a position in user units (typically SVG pixels).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the point translated by p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MaxX returns the right edge of the rect.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge of the rect.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rect.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Frame is the union bounding box of a set of region rects plus its
// horizontal center. It is the single coordinate frame all annotation
// placement measures against.
type Frame struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	CenterX float64 `json:"center_x"`
}

// IsZero reports whether the frame was derived from an empty region set.
// Callers must treat a zero frame as "no adjustment", never as an error.
func (f Frame) IsZero() bool {
	return f == Frame{}
}

// MaxX returns the right edge of the frame.
func (f Frame) MaxX() float64 { return f.X + f.Width }

// Union computes the frame covering all rects via running min/max of the
// edges. An empty input produces the zero Frame.
func Union(rects []Rect) Frame {
	if len(rects) == 0 {
		return Frame{}
	}

	minX, minY := rects[0].X, rects[0].Y
	maxX, maxY := rects[0].MaxX(), rects[0].MaxY()
	for _, r := range rects[1:] {
		minX = min(minX, r.X)
		minY = min(minY, r.Y)
		maxX = max(maxX, r.MaxX())
		maxY = max(maxY, r.MaxY())
	}

	return Frame{
		X:       minX,
		Y:       minY,
		Width:   maxX - minX,
		Height:  maxY - minY,
		CenterX: (minX + maxX) / 2,
	}
}
