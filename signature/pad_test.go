package signature_test

import (
	"bytes"
	"image/png"

	"fieldreport/bizerror"
	"fieldreport/signature"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Pad", func() {
	var pad *signature.Pad

	BeforeEach(func() {
		pad = signature.NewPad(0, 0)
	})

	scribble := func(points ...signature.Point) {
		pad.StrokeStart(points[0])
		for _, pt := range points[1:] {
			pad.StrokeMove(pt)
		}
		pad.StrokeEnd()
	}

	Describe("state machine", func() {
		It("should walk Empty -> Drawing -> Committed -> Rasterized -> Empty", func() {
			Expect(pad.State()).To(Equal(signature.StateEmpty))
			Expect(pad.Empty()).To(BeTrue())

			pad.StrokeStart(signature.Point{X: 10, Y: 10})
			Expect(pad.State()).To(Equal(signature.StateDrawing))

			pad.StrokeMove(signature.Point{X: 40, Y: 22})
			pad.StrokeEnd()
			Expect(pad.State()).To(Equal(signature.StateCommitted))
			Expect(pad.StrokeCount()).To(Equal(1))

			_, err := pad.Rasterize()
			Expect(err).To(BeNil())
			Expect(pad.State()).To(Equal(signature.StateRasterized))

			pad.Clear()
			Expect(pad.State()).To(Equal(signature.StateEmpty))
			Expect(pad.Empty()).To(BeTrue())
		})

		It("should keep strokes append-only across gestures", func() {
			scribble(signature.Point{X: 5, Y: 5}, signature.Point{X: 25, Y: 9})
			scribble(signature.Point{X: 30, Y: 40}, signature.Point{X: 80, Y: 44})
			Expect(pad.StrokeCount()).To(Equal(2))
		})

		It("should ignore moves and releases without a pointer down", func() {
			pad.StrokeMove(signature.Point{X: 3, Y: 3})
			pad.StrokeEnd()
			Expect(pad.Empty()).To(BeTrue())
			Expect(pad.State()).To(Equal(signature.StateEmpty))
		})

		It("should clamp points onto the canvas", func() {
			scribble(signature.Point{X: -50, Y: 900}, signature.Point{X: 9999, Y: -1})
			img, err := pad.Rasterize()
			Expect(err).To(BeNil())
			decoded, err := png.Decode(bytes.NewReader(img))
			Expect(err).To(BeNil())
			Expect(decoded.Bounds().Dx()).To(Equal(signature.DefaultWidth))
			Expect(decoded.Bounds().Dy()).To(Equal(signature.DefaultHeight))
		})
	})

	Describe("Rasterize", func() {
		It("should reject an empty pad with a signature-required error", func() {
			img, err := pad.Rasterize()
			Expect(img).To(BeNil())
			Expect(err).To(Equal(bizerror.ErrSignatureRequired))
		})

		It("should yield byte-identical output for an unmodified stroke set", func() {
			scribble(signature.Point{X: 10, Y: 10}, signature.Point{X: 60, Y: 35}, signature.Point{X: 110, Y: 12})

			first, err := pad.Rasterize()
			Expect(err).To(BeNil())
			second, err := pad.Rasterize()
			Expect(err).To(BeNil())
			Expect(second).To(Equal(first))
		})

		It("should change output when a stroke is added", func() {
			scribble(signature.Point{X: 10, Y: 10}, signature.Point{X: 60, Y: 35})
			first, err := pad.Rasterize()
			Expect(err).To(BeNil())

			scribble(signature.Point{X: 10, Y: 60}, signature.Point{X: 60, Y: 85})
			second, err := pad.Rasterize()
			Expect(err).To(BeNil())
			Expect(second).ToNot(Equal(first))
		})

		It("should include the in-progress stroke without committing it", func() {
			scribble(signature.Point{X: 10, Y: 10}, signature.Point{X: 60, Y: 35})
			pad.StrokeStart(signature.Point{X: 10, Y: 60})
			pad.StrokeMove(signature.Point{X: 60, Y: 85})

			withOpenStroke, err := pad.Rasterize()
			Expect(err).To(BeNil())
			Expect(pad.StrokeCount()).To(Equal(1))

			pad.StrokeEnd()
			committed, err := pad.Rasterize()
			Expect(err).To(BeNil())
			Expect(committed).To(Equal(withOpenStroke))
		})

		It("should render a tap as a visible dot", func() {
			pad.StrokeStart(signature.Point{X: 42, Y: 42})
			pad.StrokeEnd()
			img, err := pad.Rasterize()
			Expect(err).To(BeNil())

			decoded, err := png.Decode(bytes.NewReader(img))
			Expect(err).To(BeNil())
			r, g, b, _ := decoded.At(42, 42).RGBA()
			Expect(r == g && g == b && r > 0xf000).To(BeFalse(), "expected a non-white pixel at the tap")
		})
	})
})
