package confetti

import (
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG renders the current live set as vector shapes: one rounded
// rectangle per particle, rotated about its centre, with the fixed
// palette fill and black stroke. The output matches what the GL path
// draws for the same snapshot.
func WriteSVG(w io.Writer, ps *ParticleSystem, width, height int) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title("Confetti")
	canvas.Gstyle(fmt.Sprintf("stroke:%s;stroke-width:%g", Palette.Stroke.Hex(), StrokeWidth))
	for _, rp := range ps.Snapshot(nil) {
		canvas.TranslateRotate(int(rp.X), int(rp.Y), rp.Rotation)
		canvas.Roundrect(
			-int(rp.Width/2), -int(rp.Height/2),
			int(rp.Width), int(rp.Height),
			CornerRadius, CornerRadius,
			fmt.Sprintf("fill:%s;fill-opacity:%.2f", ColorRGB(rp.Color).Hex(), rp.Opacity),
		)
		canvas.Gend()
	}
	canvas.Gend()
	canvas.End()
}

// ExportSVG writes an SVG snapshot to path.
func ExportSVG(path string, ps *ParticleSystem, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create svg: %w", err)
	}
	defer f.Close()
	WriteSVG(f, ps, width, height)
	return nil
}
