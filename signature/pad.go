// Package signature captures a freehand customer signature as an ordered
// set of strokes and renders it to a compressed raster image on demand.
package signature

import (
	"fieldreport/bizerror"
)

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type State int

const (
	StateEmpty State = iota
	StateDrawing
	StateCommitted
	StateRasterized
)

// Pad is the capture state machine:
// Empty -> Drawing (first touch) -> Committed (release) -> [loop]
// -> Rasterized (save) -> Empty (clear).
// Strokes are append-only during capture; Clear discards the whole set.
type Pad struct {
	width  int
	height int

	strokes [][]Point
	current []Point
	drawing bool

	state State
}

const (
	DefaultWidth  = 480
	DefaultHeight = 200
)

func NewPad(width, height int) *Pad {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Pad{width: width, height: height}
}

func (p *Pad) State() State {
	return p.state
}

func (p *Pad) StrokeStart(pt Point) {
	if p.drawing {
		// a second pointer-down while drawing commits the open stroke first
		p.StrokeEnd()
	}
	p.drawing = true
	p.current = []Point{clamp(pt, p.width, p.height)}
	p.state = StateDrawing
}

func (p *Pad) StrokeMove(pt Point) {
	if !p.drawing {
		return
	}
	p.current = append(p.current, clamp(pt, p.width, p.height))
}

func (p *Pad) StrokeEnd() {
	if !p.drawing {
		return
	}
	p.drawing = false
	p.strokes = append(p.strokes, p.current)
	p.current = nil
	p.state = StateCommitted
}

func (p *Pad) Clear() {
	p.strokes = nil
	p.current = nil
	p.drawing = false
	p.state = StateEmpty
}

// Empty reports whether nothing has been drawn, committed or in progress.
func (p *Pad) Empty() bool {
	return len(p.strokes) == 0 && len(p.current) == 0
}

// StrokeCount counts committed strokes only.
func (p *Pad) StrokeCount() int {
	return len(p.strokes)
}

// Rasterize renders the committed strokes, plus the in-progress one if a
// gesture is still open, onto the fixed-size canvas and returns it as PNG
// bytes. Saving an empty pad is rejected. Rasterizing the same stroke set
// twice yields byte-identical output.
func (p *Pad) Rasterize() ([]byte, error) {
	if p.Empty() {
		return nil, bizerror.ErrSignatureRequired
	}

	all := p.strokes
	if len(p.current) > 0 {
		all = append(append([][]Point{}, p.strokes...), p.current)
	}

	png, err := rasterize(all, p.width, p.height)
	if err != nil {
		return nil, err
	}
	p.state = StateRasterized
	return png, nil
}

func clamp(pt Point, width, height int) Point {
	if pt.X < 0 {
		pt.X = 0
	}
	if pt.X >= width {
		pt.X = width - 1
	}
	if pt.Y < 0 {
		pt.Y = 0
	}
	if pt.Y >= height {
		pt.Y = height - 1
	}
	return pt
}
