// Package scene reads YAML documents that list primitives and builds them
// into one vertex buffer.
//
//	name: demo
//	shapes:
//	  - type: cylinder
//	    position: [0, 0, 0]
//	    radius: 1
//	    sides: 16
//	  - type: sphere
//	    position: [0, 3, 0]
//	    semi: true
//
// Unset fields take the shape defaults.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/goprim/pkg/shape"
	"github.com/philipparndt/goprim/pkg/vertex"
	"gopkg.in/yaml.v3"
)

// ErrUnknownType is returned for a shape type that is not a primitive.
var ErrUnknownType = errors.New("unknown shape type")

// ShapeDef is one entry of the shapes list. Pointer fields distinguish
// "unset" from zero.
type ShapeDef struct {
	Type     shape.Kind      `yaml:"type"`
	Position mgl32.Vec3      `yaml:"position,omitempty"`
	Color    *mgl32.Vec3     `yaml:"color,omitempty"`
	Material *shape.Material `yaml:"material,omitempty"`
	CapSeam  *bool           `yaml:"cap_seam,omitempty"`

	Width  *float32 `yaml:"width,omitempty"`
	Length *float32 `yaml:"length,omitempty"`
	Height *float32 `yaml:"height,omitempty"`

	Radius       *float32 `yaml:"radius,omitempty"`
	RadiusLong   *float32 `yaml:"radius_long,omitempty"`
	RadiusLat    *float32 `yaml:"radius_lat,omitempty"`
	Sides        *int     `yaml:"sides,omitempty"`
	Subdivisions *int     `yaml:"subdivisions,omitempty"`
	Top          *bool    `yaml:"top,omitempty"`
	Bottom       *bool    `yaml:"bottom,omitempty"`
	Semi         bool     `yaml:"semi,omitempty"`
}

// Scene is a named list of shapes.
type Scene struct {
	Name   string     `yaml:"name,omitempty"`
	Shapes []ShapeDef `yaml:"shapes"`
}

// Decode reads a scene document. Unknown keys are rejected.
func Decode(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	return &s, nil
}

// Parse decodes a scene from memory.
func Parse(data []byte) (*Scene, error) {
	return Decode(bytes.NewReader(data))
}

// Load reads and decodes a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Encode writes the scene as YAML.
func (s *Scene) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

// Build constructs every shape in order. The error names the index of
// the first shape that failed.
func (s *Scene) Build() ([]shape.Renderable, error) {
	shapes := make([]shape.Renderable, 0, len(s.Shapes))
	for i, def := range s.Shapes {
		r, err := def.Build()
		if err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", i, def.Type, err)
		}
		shapes = append(shapes, r)
	}
	return shapes, nil
}

// Buffer builds the scene and joins every shape's records in order.
func (s *Scene) Buffer() (vertex.Buffer, []shape.Renderable, error) {
	shapes, err := s.Build()
	if err != nil {
		return vertex.Buffer{}, nil, err
	}
	bufs := make([]vertex.Buffer, len(shapes))
	for i, r := range shapes {
		bufs[i] = r.Vertices()
	}
	return vertex.Concat(bufs...), shapes, nil
}

func (d ShapeDef) options() []shape.Option {
	var opts []shape.Option
	if d.Color != nil {
		opts = append(opts, shape.WithColor(*d.Color))
	}
	if d.Material != nil {
		opts = append(opts, shape.WithMaterial(d.Material))
	}
	if d.CapSeam != nil {
		opts = append(opts, shape.WithCapSeam(*d.CapSeam))
	}
	return opts
}

func setFloat(dst *float32, src *float32) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// Build constructs the shape the definition describes.
func (d ShapeDef) Build() (shape.Renderable, error) {
	opts := d.options()

	switch d.Type {
	case shape.KindPlane:
		p := shape.DefaultPlaneParams()
		p.Position = d.Position
		setFloat(&p.Width, d.Width)
		setFloat(&p.Length, d.Length)
		return shape.NewPlane(p, opts...), nil

	case shape.KindCube:
		p := shape.DefaultCubeParams()
		p.Position = d.Position
		setFloat(&p.Width, d.Width)
		setFloat(&p.Height, d.Height)
		setFloat(&p.Length, d.Length)
		return shape.NewCube(p, opts...), nil

	case shape.KindPyramid:
		p := shape.DefaultPyramidParams()
		p.Position = d.Position
		setFloat(&p.Width, d.Width)
		setFloat(&p.Length, d.Length)
		setFloat(&p.Height, d.Height)
		return shape.NewPyramid(p, opts...), nil

	case shape.KindCylinder:
		p := shape.DefaultCylinderParams()
		p.Position = d.Position
		setFloat(&p.Radius, d.Radius)
		setFloat(&p.Height, d.Height)
		setInt(&p.Sides, d.Sides)
		setInt(&p.Subdivisions, d.Subdivisions)
		setBool(&p.Top, d.Top)
		setBool(&p.Bottom, d.Bottom)
		c, err := shape.NewCylinder(p, opts...)
		if err != nil {
			return nil, err
		}
		return c, nil

	case shape.KindSphere:
		p := shape.DefaultSphereParams()
		p.Position = d.Position
		setFloat(&p.RadiusLong, d.Radius)
		setFloat(&p.RadiusLat, d.Radius)
		setFloat(&p.RadiusLong, d.RadiusLong)
		setFloat(&p.RadiusLat, d.RadiusLat)
		setInt(&p.Sides, d.Sides)
		p.SemiCircle = d.Semi
		sp, err := shape.NewEllipsoid(p, opts...)
		if err != nil {
			return nil, err
		}
		return sp, nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownType, d.Type)
}
