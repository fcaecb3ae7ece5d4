package glgpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// VertexShader reads the four record attributes at their layout locations.
const VertexShader = `#version 410 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 color;
layout(location = 2) in vec3 normal;
layout(location = 3) in vec2 uv;

uniform mat4 projection;
uniform mat4 view;
uniform mat4 model;

out vec3 vColor;
out vec3 vNormal;
out vec2 vUV;

void main() {
	vColor = color;
	vNormal = mat3(model) * normal;
	vUV = uv;
	gl_Position = projection * view * model * vec4(position, 1.0);
}` + "\x00"

// FragmentShader lights both faces so inward normals still shade.
const FragmentShader = `#version 410 core
in vec3 vColor;
in vec3 vNormal;
in vec2 vUV;

uniform vec3 lightDir;

out vec4 fragColor;

void main() {
	float diffuse = abs(dot(normalize(vNormal), normalize(-lightDir)));
	fragColor = vec4(vColor * (0.25 + 0.75 * diffuse), 1.0);
}` + "\x00"

// DefaultLight points down and away from the default camera.
var DefaultLight = mgl32.Vec3{-0.5, -1.0, -0.5}

// Program is a linked shader program with the uniforms the viewer sets.
type Program struct {
	ID         uint32
	projection int32
	view       int32
	model      int32
	lightDir   int32
}

// NewProgram compiles the default shaders.
func NewProgram() (*Program, error) {
	id, err := newProgram(VertexShader, FragmentShader)
	if err != nil {
		return nil, err
	}
	return &Program{
		ID:         id,
		projection: gl.GetUniformLocation(id, gl.Str("projection\x00")),
		view:       gl.GetUniformLocation(id, gl.Str("view\x00")),
		model:      gl.GetUniformLocation(id, gl.Str("model\x00")),
		lightDir:   gl.GetUniformLocation(id, gl.Str("lightDir\x00")),
	}, nil
}

// Use binds the program and sets its uniforms.
func (p *Program) Use(projection, view, model mgl32.Mat4, light mgl32.Vec3) {
	gl.UseProgram(p.ID)
	gl.UniformMatrix4fv(p.projection, 1, false, &projection[0])
	gl.UniformMatrix4fv(p.view, 1, false, &view[0])
	gl.UniformMatrix4fv(p.model, 1, false, &model[0])
	gl.Uniform3f(p.lightDir, light[0], light[1], light[2])
}

// Delete frees the program.
func (p *Program) Delete() {
	gl.DeleteProgram(p.ID)
}

func compileShader(kind uint32, src, name string) (uint32, error) {
	s := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(s, 1, csrc, nil)
	free()
	gl.CompileShader(s)

	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(s, logLength, nil, &log[0])
		gl.DeleteShader(s)
		return 0, fmt.Errorf("%s shader compile error: %s", name, string(log))
	}
	return s, nil
}

// newProgram compiles shaders and links them into a program.
func newProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	v, err := compileShader(gl.VERTEX_SHADER, vertexSrc, "vertex")
	if err != nil {
		return 0, err
	}
	f, err := compileShader(gl.FRAGMENT_SHADER, fragmentSrc, "fragment")
	if err != nil {
		gl.DeleteShader(v)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, v)
	gl.AttachShader(program, f)
	gl.LinkProgram(program)

	// shaders can be deleted after linking
	gl.DeleteShader(v)
	gl.DeleteShader(f)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("program link error: %s", string(log))
	}
	return program, nil
}
