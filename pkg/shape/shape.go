// Package shape generates triangle lists for basic primitives. Each shape
// is built once from its parameters; the resulting vertex buffer never
// changes afterwards. Build a new shape to change parameters.
package shape

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/goprim/pkg/vertex"
)

// Kind names a primitive type.
type Kind string

const (
	KindPlane    Kind = "plane"
	KindCube     Kind = "cube"
	KindPyramid  Kind = "pyramid"
	KindCylinder Kind = "cylinder"
	KindSphere   Kind = "sphere"
)

// Kinds lists every primitive in a stable order.
func Kinds() []Kind {
	return []Kind{KindPlane, KindCube, KindPyramid, KindCylinder, KindSphere}
}

// Renderable is anything that can hand a finished vertex buffer to an
// uploader.
type Renderable interface {
	Kind() Kind
	Vertices() vertex.Buffer
	Origin() mgl32.Vec3
	Material() *Material
}

// ErrInvalidConfig is wrapped by every ConfigError.
var ErrInvalidConfig = errors.New("invalid shape configuration")

// ConfigError reports a count parameter that cannot produce geometry.
type ConfigError struct {
	Shape Kind
	Field string
	Value int
	Min   int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s must be at least %d, got %d", e.Shape, e.Field, e.Min, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// Material names the textures a renderer should bind for a shape. Nothing
// here is loaded; a nil *Material means untextured.
type Material struct {
	Diffuse         string  `yaml:"diffuse,omitempty"`
	Specular        string  `yaml:"specular,omitempty"`
	OverlayDiffuse  string  `yaml:"overlay_diffuse,omitempty"`
	OverlaySpecular string  `yaml:"overlay_specular,omitempty"`
	Shininess       float32 `yaml:"shininess,omitempty"`
}

// HasTextures reports whether both base textures are named.
func (m *Material) HasTextures() bool {
	return m != nil && m.Diffuse != "" && m.Specular != ""
}

// HasOverlay reports whether either overlay texture is named.
func (m *Material) HasOverlay() bool {
	return m != nil && (m.OverlayDiffuse != "" || m.OverlaySpecular != "")
}

type options struct {
	material *Material
	color    mgl32.Vec3
	capSeam  bool
}

func defaultOptions() options {
	return options{color: vertex.White, capSeam: true}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option customizes shape construction.
type Option func(*options)

// WithMaterial attaches a material descriptor. The descriptor is copied.
func WithMaterial(m *Material) Option {
	return func(o *options) {
		if m == nil {
			o.material = nil
			return
		}
		c := *m
		o.material = &c
	}
}

// WithColor overrides the per-vertex color (white by default).
func WithColor(c mgl32.Vec3) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithCapSeam controls the closing triangle of cap fans. With the seam
// (the default) a fan over S sides has S+1 triangles, the last one
// repeating the first; without it the fan has exactly S.
func WithCapSeam(seam bool) Option {
	return func(o *options) {
		o.capSeam = seam
	}
}

// mesh holds the state common to every shape once generation is done.
type mesh struct {
	origin   mgl32.Vec3
	buf      vertex.Buffer
	material *Material
}

func (m mesh) Vertices() vertex.Buffer { return m.buf }
func (m mesh) Origin() mgl32.Vec3      { return m.origin }
func (m mesh) Material() *Material     { return m.material }

// emitter appends records that share a color.
type emitter struct {
	buf   vertex.Buffer
	color mgl32.Vec3
}

func newEmitter(o options, records int) *emitter {
	return &emitter{buf: vertex.NewBuffer(records), color: o.color}
}

func (e *emitter) add(pos, normal mgl32.Vec3, u, v float32) {
	e.buf.Append(vertex.NewRecord(pos, e.color, normal, u, v))
}

func (e *emitter) finish(origin mgl32.Vec3, o options) mesh {
	return mesh{origin: origin, buf: e.buf.Freeze(), material: o.material}
}
