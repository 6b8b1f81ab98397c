package signature

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
)

var strokeColor = color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}

func rasterize(strokes [][]Point, width, height int) ([]byte, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	for _, stroke := range strokes {
		if len(stroke) == 1 {
			plotThick(canvas, stroke[0].X, stroke[0].Y)
			continue
		}
		for i := 1; i < len(stroke); i++ {
			drawLine(canvas, stroke[i-1], stroke[i])
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawLine paints a 2px Bresenham segment between two points.
func drawLine(canvas *image.RGBA, a, b Point) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx := 1
	if a.X > b.X {
		sx = -1
	}
	sy := 1
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy

	x, y := a.X, a.Y
	for {
		plotThick(canvas, x, y)
		if x == b.X && y == b.Y {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func plotThick(canvas *image.RGBA, x, y int) {
	bounds := canvas.Bounds()
	for ox := 0; ox <= 1; ox++ {
		for oy := 0; oy <= 1; oy++ {
			px, py := x+ox, y+oy
			if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
				canvas.SetRGBA(px, py, strokeColor)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
