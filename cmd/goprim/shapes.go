package main

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/goprim/pkg/scene"
	"github.com/philipparndt/goprim/pkg/shape"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// shapeFlags hold every parameter a primitive command can take. Only
// flags the user set are copied into the definition, so unset ones keep
// the shape defaults.
type shapeFlags struct {
	pos    []float32
	color  []float32
	noSeam bool

	width, length, height           float32
	radius, radiusLong, radiusLat   float32
	sides, subdivisions             int
	top, bottom, semi               bool
	diffuse, specular               string
	overlayDiffuse, overlaySpecular string

	output outputFlags
}

// shapeCommand describes which flags a primitive accepts.
type shapeCommand struct {
	kind  shape.Kind
	short string
	flags func(f *pflag.FlagSet, s *shapeFlags)
}

var shapeCommands = []shapeCommand{
	{
		kind:  shape.KindPlane,
		short: "Generate a horizontal plane",
		flags: func(f *pflag.FlagSet, s *shapeFlags) {
			d := shape.DefaultPlaneParams()
			f.Float32Var(&s.width, "width", d.Width, "size along X")
			f.Float32Var(&s.length, "length", d.Length, "size along Z")
		},
	},
	{
		kind:  shape.KindCube,
		short: "Generate a box resting on its base",
		flags: func(f *pflag.FlagSet, s *shapeFlags) {
			d := shape.DefaultCubeParams()
			f.Float32Var(&s.width, "width", d.Width, "size along X")
			f.Float32Var(&s.height, "height", d.Height, "size along Y")
			f.Float32Var(&s.length, "length", d.Length, "size along Z")
		},
	},
	{
		kind:  shape.KindPyramid,
		short: "Generate a four-sided pyramid",
		flags: func(f *pflag.FlagSet, s *shapeFlags) {
			d := shape.DefaultPyramidParams()
			f.Float32Var(&s.width, "width", d.Width, "base size along X")
			f.Float32Var(&s.length, "length", d.Length, "base size along Z")
			f.Float32Var(&s.height, "height", d.Height, "apex height")
		},
	},
	{
		kind:  shape.KindCylinder,
		short: "Generate a cylinder with optional caps",
		flags: func(f *pflag.FlagSet, s *shapeFlags) {
			d := shape.DefaultCylinderParams()
			f.Float32Var(&s.radius, "radius", d.Radius, "radius")
			f.Float32Var(&s.height, "height", d.Height, "height")
			f.IntVar(&s.sides, "sides", d.Sides, "segments around the axis")
			f.IntVar(&s.subdivisions, "subdivisions", d.Subdivisions, "bands along the height")
			f.BoolVar(&s.top, "top", d.Top, "add the top cap")
			f.BoolVar(&s.bottom, "bottom", d.Bottom, "add the bottom cap")
		},
	},
	{
		kind:  shape.KindSphere,
		short: "Generate a sphere, ellipsoid or half sphere",
		flags: func(f *pflag.FlagSet, s *shapeFlags) {
			d := shape.DefaultSphereParams()
			f.Float32Var(&s.radius, "radius", d.RadiusLong, "radius on every axis")
			f.Float32Var(&s.radiusLong, "radius-long", d.RadiusLong, "horizontal radius, overrides --radius")
			f.Float32Var(&s.radiusLat, "radius-lat", d.RadiusLat, "vertical radius, overrides --radius")
			f.IntVar(&s.sides, "sides", d.Sides, "segments around the axis")
			f.BoolVar(&s.semi, "semi", false, "generate the upper half only")
		},
	},
}

func init() {
	for _, sc := range shapeCommands {
		rootCmd.AddCommand(newShapeCommand(sc))
	}
}

func newShapeCommand(sc shapeCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(sc.kind),
		Short: sc.short,
		Args:  cobra.NoArgs,
	}
	s := bindShapeFlags(cmd, sc)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		def, err := s.definition(sc.kind, cmd.Flags())
		if err != nil {
			return err
		}
		r, err := def.Build()
		if err != nil {
			return err
		}
		return s.output.emit(os.Stdout, string(sc.kind), r.Vertices(), []shape.Renderable{r})
	}
	return cmd
}

func bindShapeFlags(cmd *cobra.Command, sc shapeCommand) *shapeFlags {
	s := &shapeFlags{}
	f := cmd.Flags()
	f.Float32SliceVar(&s.pos, "pos", []float32{0, 0, 0}, "position as x,y,z")
	f.Float32SliceVar(&s.color, "color", []float32{1, 1, 1}, "vertex color as r,g,b in 0..1")
	f.BoolVar(&s.noSeam, "no-seam", false, "do not repeat the first rim vertex when closing cap fans")
	f.StringVar(&s.diffuse, "diffuse", "", "diffuse texture name")
	f.StringVar(&s.specular, "specular", "", "specular texture name")
	f.StringVar(&s.overlayDiffuse, "overlay-diffuse", "", "overlay diffuse texture name")
	f.StringVar(&s.overlaySpecular, "overlay-specular", "", "overlay specular texture name")
	sc.flags(f, s)
	s.output.register(cmd)
	return s
}

func vec3Flag(name string, v []float32) (mgl32.Vec3, error) {
	if len(v) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("--%s needs 3 values, got %d", name, len(v))
	}
	return mgl32.Vec3{v[0], v[1], v[2]}, nil
}

// definition turns the flags the user changed into a scene entry.
func (s *shapeFlags) definition(kind shape.Kind, f *pflag.FlagSet) (scene.ShapeDef, error) {
	def := scene.ShapeDef{Type: kind, Semi: s.semi}

	pos, err := vec3Flag("pos", s.pos)
	if err != nil {
		return def, err
	}
	def.Position = pos

	if f.Changed("color") {
		c, err := vec3Flag("color", s.color)
		if err != nil {
			return def, err
		}
		def.Color = &c
	}
	if s.noSeam {
		seam := false
		def.CapSeam = &seam
	}
	if s.diffuse != "" || s.specular != "" || s.overlayDiffuse != "" || s.overlaySpecular != "" {
		def.Material = &shape.Material{
			Diffuse:         s.diffuse,
			Specular:        s.specular,
			OverlayDiffuse:  s.overlayDiffuse,
			OverlaySpecular: s.overlaySpecular,
		}
	}

	floats := map[string]**float32{
		"width":       &def.Width,
		"length":      &def.Length,
		"height":      &def.Height,
		"radius":      &def.Radius,
		"radius-long": &def.RadiusLong,
		"radius-lat":  &def.RadiusLat,
	}
	values := map[string]*float32{
		"width":       &s.width,
		"length":      &s.length,
		"height":      &s.height,
		"radius":      &s.radius,
		"radius-long": &s.radiusLong,
		"radius-lat":  &s.radiusLat,
	}
	for name, dst := range floats {
		if f.Changed(name) {
			*dst = values[name]
		}
	}

	if f.Changed("sides") {
		def.Sides = &s.sides
	}
	if f.Changed("subdivisions") {
		def.Subdivisions = &s.subdivisions
	}
	if f.Changed("top") {
		def.Top = &s.top
	}
	if f.Changed("bottom") {
		def.Bottom = &s.bottom
	}
	return def, nil
}
