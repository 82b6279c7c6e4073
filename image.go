package gnuplot

import (
	"bufio"
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// PlotImage plots a raster image as a 2D heat map. Each pixel becomes one
// "column row luminance" sample; the engine maps luminance through the
// current palette. Row 0 is the top of the image.
func (s *Session) PlotImage(img image.Image, title string) *Session {
	if !s.IsReady() {
		s.fail(fmt.Errorf("%w: session not ready", ErrSessionUnavailable))
		return s
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		s.fail(fmt.Errorf("%w: empty image", ErrValidation))
		return s
	}

	path, err := s.writeRows(func(w *bufio.Writer) error {
		for row := 0; row < bounds.Dy(); row++ {
			for col := 0; col < bounds.Dx(); col++ {
				r, g, b, _ := img.At(bounds.Min.X+col, bounds.Min.Y+row).RGBA()
				// ITU-R BT.601 luminance, scaled back to [0, 255].
				lum := (19595*r + 38470*g + 7471*b + 1<<15) >> 24
				if _, err := fmt.Fprintf(w, "%d %d %d\n", col, row, lum); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		s.fail(err)
		return s
	}

	var sb strings.Builder
	sb.WriteString(s.drawVerb(false))
	fmt.Fprintf(&sb, " %q with image", path)
	if title != "" {
		fmt.Fprintf(&sb, " title %q", title)
	}
	return s.Send(sb.String())
}

// PlotImageResized downsamples the image so neither dimension exceeds
// maxDim before plotting it, keeping scratch files small for large
// inputs. Images already within the bound are plotted as-is.
func (s *Session) PlotImageResized(img image.Image, maxDim int, title string) *Session {
	if maxDim <= 0 {
		s.fail(fmt.Errorf("%w: max dimension %d must be positive", ErrValidation, maxDim))
		return s
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return s.PlotImage(img, title)
	}

	scale := float64(maxDim) / float64(w)
	if h > w {
		scale = float64(maxDim) / float64(h)
	}
	dst := image.NewNRGBA(image.Rect(0, 0,
		max(1, int(float64(w)*scale)), max(1, int(float64(h)*scale))))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return s.PlotImage(dst, title)
}
