// Package opengl provides an OpenGL 4.1 cell host and GLFW input adapter for
// the scrollview package.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/scrollview"
)

// cellVertex is the GPU vertex layout: position plus a packed RGBA color.
type cellVertex struct {
	X, Y  float32
	Color uint32
}

// cellSlot is the CPU-side state of one cell visual. The handle the core
// holds is an index into the slots slice.
type cellSlot struct {
	visible bool
	offset  float32
	index   int
	color   uint32
}

// CellRenderer is a scrollview.CellHost that draws each cell as a colored
// quad along the scroll axis. The item type is a packed RGBA color
// (0xAABBGGRR, matching the GL little-endian vertex layout).
//
// It exists both as a usable minimal host and as the reference for writing
// richer hosts: Instantiate/SetVisible/SetLocalOffset/Bind mutate slot state
// only; all GL work happens in Draw.
type CellRenderer struct {
	shader   uint32
	vao, vbo uint32
	projLoc  int32
	width    int
	height   int

	axis     scrollview.Axis
	cellSpan float32 // cell extent along the scroll axis, normalized
	slots    []cellSlot

	verts []cellVertex
}

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;

out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    Color = aColor;
}
` + "\x00"

const fragmentShaderSource = `
#version 410 core
in vec4 Color;

out vec4 FragColor;

void main() {
    FragColor = Color;
}
` + "\x00"

// NewCellRenderer creates a cell renderer for a window of the given pixel
// size. cellSpan is the normalized extent of one cell along the scroll axis,
// typically the view's cell interval minus a little spacing.
func NewCellRenderer(width, height int, axis scrollview.Axis, cellSpan float32) (*CellRenderer, error) {
	r := &CellRenderer{
		width:    width,
		height:   height,
		axis:     axis,
		cellSpan: cellSpan,
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// Vertex layout: Pos (2 floats) + Color (1 uint32)
	stride := int32(unsafe.Sizeof(cellVertex{}))

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Color attribute (normalized uint8x4)
	gl.VertexAttribPointerWithOffset(1, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(cellVertex{}.Color))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	return r, nil
}

// Instantiate creates one cell slot. The returned handle is the slot index.
func (r *CellRenderer) Instantiate() (scrollview.CellHandle, error) {
	r.slots = append(r.slots, cellSlot{index: -1})
	return len(r.slots) - 1, nil
}

// SetVisible shows or hides a cell slot.
func (r *CellRenderer) SetVisible(h scrollview.CellHandle, visible bool) {
	if s := r.slot(h); s != nil {
		s.visible = visible
	}
}

// SetLocalOffset positions a cell slot along the scroll axis.
func (r *CellRenderer) SetLocalOffset(h scrollview.CellHandle, offset float32) {
	if s := r.slot(h); s != nil {
		s.offset = offset
	}
}

// Bind loads an item into a cell slot.
func (r *CellRenderer) Bind(h scrollview.CellHandle, index int, item uint32) {
	if s := r.slot(h); s != nil {
		s.index = index
		s.color = item
	}
}

func (r *CellRenderer) slot(h scrollview.CellHandle) *cellSlot {
	i, ok := h.(int)
	if !ok || i < 0 || i >= len(r.slots) {
		return nil
	}
	return &r.slots[i]
}

// Resize updates the window size.
func (r *CellRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Draw renders all visible cell slots as quads. Call once per frame after the
// view's Update.
func (r *CellRenderer) Draw() {
	r.verts = r.verts[:0]
	for i := range r.slots {
		s := &r.slots[i]
		if !s.visible {
			continue
		}
		r.appendQuad(s)
	}
	if len(r.verts) == 0 {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	gl.UseProgram(r.shader)

	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.verts)*int(unsafe.Sizeof(cellVertex{})),
		gl.Ptr(r.verts), gl.STREAM_DRAW)

	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.verts)))

	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// appendQuad emits two triangles for one cell. The normalized scroll-axis
// offset maps to pixels along the configured axis; the cross axis is inset a
// tenth on each side so adjacent cells read as separate tiles.
func (r *CellRenderer) appendQuad(s *cellSlot) {
	var x0, y0, x1, y1 float32
	span := r.cellSpan

	if r.axis == scrollview.Horizontal {
		w := float32(r.width)
		x0 = s.offset * w
		x1 = (s.offset + span) * w
		y0 = float32(r.height) * 0.1
		y1 = float32(r.height) * 0.9
	} else {
		h := float32(r.height)
		y0 = s.offset * h
		y1 = (s.offset + span) * h
		x0 = float32(r.width) * 0.1
		x1 = float32(r.width) * 0.9
	}

	c := s.color
	r.verts = append(r.verts,
		cellVertex{x0, y0, c},
		cellVertex{x1, y0, c},
		cellVertex{x1, y1, c},
		cellVertex{x0, y0, c},
		cellVertex{x1, y1, c},
		cellVertex{x0, y1, c},
	)
}

// Delete releases OpenGL resources.
func (r *CellRenderer) Delete() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	// Compile vertex shader
	vertexShader := gl.CreateShader(gl.VERTEX_SHADER)
	csource, free := gl.Strs(vertexSource)
	gl.ShaderSource(vertexShader, 1, csource, nil)
	free()
	gl.CompileShader(vertexShader)

	var status int32
	gl.GetShaderiv(vertexShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(vertexShader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(vertexShader, logLength, nil, &log[0])
		return 0, fmt.Errorf("vertex shader compilation failed: %s", string(log))
	}

	// Compile fragment shader
	fragmentShader := gl.CreateShader(gl.FRAGMENT_SHADER)
	csource, free = gl.Strs(fragmentSource)
	gl.ShaderSource(fragmentShader, 1, csource, nil)
	free()
	gl.CompileShader(fragmentShader)

	gl.GetShaderiv(fragmentShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(fragmentShader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(fragmentShader, logLength, nil, &log[0])
		return 0, fmt.Errorf("fragment shader compilation failed: %s", string(log))
	}

	// Link program
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	// Cleanup shaders (they're linked into the program now)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
