package viewer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/freetype/truetype"
	"github.com/philipparndt/goprim/pkg/analysis"
	"github.com/philipparndt/goprim/pkg/geometry"
	"github.com/philipparndt/goprim/pkg/vertex"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// ErrEmpty is returned when there is nothing to draw.
var ErrEmpty = errors.New("nothing to render")

// Options control a software preview.
type Options struct {
	Width, Height int
	// Supersample renders at this multiple of the output size and scales
	// down. Values below 2 render directly.
	Supersample int
	Pitch, Yaw  float64 // camera angles in radians
	Distance    float64 // camera distance; zero frames the mesh
	Light       mgl32.Vec3
	Background  color.RGBA
	Wireframe   bool
	Caption     string
}

// DefaultOptions looks at the mesh from above and to the right.
func DefaultOptions() Options {
	return Options{
		Width:       640,
		Height:      480,
		Supersample: 2,
		Pitch:       0.45,
		Yaw:         0.6,
		Light:       mgl32.Vec3{-0.5, -1.0, -0.5},
		Background:  color.RGBA{15, 18, 25, 255},
	}
}

var (
	wireColor    = color.RGBA{230, 230, 240, 255}
	captionColor = color.RGBA{220, 220, 220, 255}
)

// shade applies a two-sided Lambert term to the record color. Lateral
// normals of some primitives face inward, so the sign is ignored.
func shade(r vertex.Record, light mgl32.Vec3) color.RGBA {
	intensity := 0.25 + 0.75*math.Abs(float64(r.Normal.Dot(light)))
	c := r.Color.Mul(float32(intensity))
	return color.RGBA{toByte(c[0]), toByte(c[1]), toByte(c[2]), 255}
}

func toByte(f float32) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, float64(f))) * 255))
}

// Render draws buf with flat shading from its stored normals.
func Render(buf vertex.Buffer, opts Options) (*image.RGBA, error) {
	if buf.TriangleCount() == 0 {
		return nil, ErrEmpty
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid preview size %dx%d", opts.Width, opts.Height)
	}

	camera := NewCamera(analysis.Bounds(buf))
	if opts.Distance > 0 {
		camera.Distance = opts.Distance
	}
	camera.SetAngles(opts.Pitch, opts.Yaw)
	return render(buf, camera, opts)
}

// render draws buf as seen from camera. The camera angles and distance in
// opts are ignored.
func render(buf vertex.Buffer, camera *Camera, opts Options) (*image.RGBA, error) {
	scale := max(1, opts.Supersample)
	width, height := opts.Width*scale, opts.Height*scale

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	zbuffer := make([]float64, width*height)
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}

	light := opts.Light.Normalize()
	fw, fh := float64(width), float64(height)
	for i := 0; i < buf.TriangleCount(); i++ {
		tri := buf.Triangle(i)
		var pts [3]screenPoint
		for k, r := range tri {
			x, y, z := camera.Project(geometry.FromVec3(r.Position), fw, fh)
			pts[k] = screenPoint{x, y, z}
		}
		fillTriangleWithDepth(img, zbuffer, pts, shade(tri[0], light))

		if opts.Wireframe {
			for k := range pts {
				a, b := pts[k], pts[(k+1)%3]
				if !a.finite() || !b.finite() || !a.near(fw, fh) || !b.near(fw, fh) {
					continue
				}
				drawLine(img, int(a[0]), int(a[1]), int(b[0]), int(b[1]), wireColor)
			}
		}
	}

	out := img
	if scale > 1 {
		out = image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
		draw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	}

	if opts.Caption != "" {
		if err := drawCaption(out, opts.Caption); err != nil {
			return nil, err
		}
	}
	return out, nil
}

var (
	captionOnce sync.Once
	captionFont *truetype.Font
	captionErr  error
)

// drawCaption writes text along the bottom-left corner.
func drawCaption(img *image.RGBA, text string) error {
	captionOnce.Do(func() {
		captionFont, captionErr = truetype.Parse(goregular.TTF)
	})
	if captionErr != nil {
		return fmt.Errorf("failed to load caption font: %w", captionErr)
	}

	face := truetype.NewFace(captionFont, &truetype.Options{Size: 13, DPI: 72, Hinting: font.HintingFull})
	defer face.Close()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(captionColor),
		Face: face,
		Dot:  fixed.P(8, img.Bounds().Dy()-8),
	}
	d.DrawString(text)
	return nil
}

// WritePNG renders buf and encodes it to w.
func WritePNG(w io.Writer, buf vertex.Buffer, opts Options) error {
	img, err := Render(buf, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePNG renders buf into a new PNG file. Nothing is created when
// rendering fails.
func SavePNG(path string, buf vertex.Buffer, opts Options) error {
	img, err := Render(buf, opts)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}
