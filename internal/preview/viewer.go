package preview

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/forgelab3d/meshforge/internal/logger"
	"github.com/forgelab3d/meshforge/pkg/math"
	"github.com/forgelab3d/meshforge/pkg/mesh"
)

const vertexShaderSrc = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;

uniform mat4 uProj;
uniform mat4 uView;
uniform mat4 uModel;

out vec3 vNormal;

void main() {
	vNormal = mat3(uModel) * aNormal;
	gl_Position = uProj * uView * uModel * vec4(aPos, 1.0);
}
`

const fragmentShaderSrc = `#version 410 core
in vec3 vNormal;

uniform vec3 uLightDir;

out vec4 fragColor;

void main() {
	float ndl = max(dot(normalize(vNormal), normalize(uLightDir)), 0.0);
	vec3 base = vec3(0.55, 0.65, 0.8);
	fragColor = vec4(base * (0.25 + 0.75 * ndl), 1.0);
}
`

// Viewer renders one uploaded mesh with an orbit camera. It implements
// mesh.Uploader, so generators can hand meshes straight to it.
type Viewer struct {
	win *Window
	cam *OrbitCamera

	program    uint32
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	uProj     int32
	uView     int32
	uModel    int32
	uLightDir int32
}

// NewViewer opens a window, initializes OpenGL and compiles the
// preview shader.
func NewViewer(cfg WindowConfig) (*Viewer, error) {
	win, err := NewWindow(cfg)
	if err != nil {
		return nil, err
	}

	if err := gl.Init(); err != nil {
		win.Close()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	gl.Enable(gl.DEPTH_TEST)

	program, err := compileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("compiling preview shader: %w", err)
	}

	return &Viewer{
		win:       win,
		cam:       NewOrbitCamera(),
		program:   program,
		uProj:     uniform(program, "uProj"),
		uView:     uniform(program, "uView"),
		uModel:    uniform(program, "uModel"),
		uLightDir: uniform(program, "uLightDir"),
	}, nil
}

// Upload pushes the mesh's buffers to the GPU. The attribute pointers
// are driven by the mesh's schema, so any float32 layout works as long
// as the shader's locations line up with the semantics.
func (v *Viewer) Upload(m *mesh.Mesh) error {
	if m == nil || m.VertexCount == 0 || len(m.Indices) == 0 {
		return fmt.Errorf("%w: empty mesh", mesh.ErrInvalidArgument)
	}

	v.releaseBuffers()

	gl.GenVertexArrays(1, &v.vao)
	gl.BindVertexArray(v.vao)

	gl.GenBuffers(1, &v.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.VertexData), unsafe.Pointer(&m.VertexData[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &v.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, v.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*2, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	stride := int32(m.Schema.Stride())
	for i, ch := range m.Schema.Channels() {
		loc := uint32(ch.Semantic)
		gl.VertexAttribPointerWithOffset(loc, int32(ch.Count), gl.FLOAT, false, stride, uintptr(m.Schema.OffsetAt(i)))
		gl.EnableVertexAttribArray(loc)
	}

	gl.BindVertexArray(0)

	v.indexCount = int32(len(m.Indices))
	v.cam.FitBounds(m.Bounds)

	logger.Info("mesh uploaded",
		zap.Int("vertices", m.VertexCount),
		zap.Int("triangles", m.TriangleCount()),
	)
	return nil
}

// Run drives the event loop until the window is closed or Escape is
// pressed. Left drag orbits, the wheel zooms.
func (v *Viewer) Run() {
	dragging := false
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					return
				}
			case *sdl.MouseButtonEvent:
				if e.Button == sdl.BUTTON_LEFT {
					dragging = e.Type == sdl.MOUSEBUTTONDOWN
				}
			case *sdl.MouseMotionEvent:
				if dragging {
					v.cam.HandleDrag(float32(e.XRel), float32(e.YRel))
				}
			case *sdl.MouseWheelEvent:
				v.cam.HandleZoom(float32(e.Y))
			}
		}

		v.render()
		v.win.SwapBuffers()
	}
}

func (v *Viewer) render() {
	width, height := v.win.Size()
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0.12, 0.12, 0.14, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if v.indexCount == 0 {
		return
	}

	aspect := float32(width) / float32(height)
	proj := math.Perspective(0.8, aspect, 0.01, 1000)
	view := v.cam.ViewMatrix()
	model := math.Identity()
	light := v.cam.Position().Sub(v.cam.Center).Normalize()

	gl.UseProgram(v.program)
	gl.UniformMatrix4fv(v.uProj, 1, false, proj.Ptr())
	gl.UniformMatrix4fv(v.uView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(v.uModel, 1, false, model.Ptr())
	gl.Uniform3f(v.uLightDir, light.X, light.Y, light.Z)

	gl.BindVertexArray(v.vao)
	gl.DrawElements(gl.TRIANGLES, v.indexCount, gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)
}

func (v *Viewer) releaseBuffers() {
	if v.vao != 0 {
		gl.DeleteVertexArrays(1, &v.vao)
		gl.DeleteBuffers(1, &v.vbo)
		gl.DeleteBuffers(1, &v.ebo)
		v.vao, v.vbo, v.ebo = 0, 0, 0
		v.indexCount = 0
	}
}

// Close releases GPU resources and the window.
func (v *Viewer) Close() {
	v.releaseBuffers()
	if v.program != 0 {
		gl.DeleteProgram(v.program)
	}
	v.win.Close()
}
