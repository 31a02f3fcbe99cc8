package opengl

import (
	"fmt"
	"image"
	"image/draw"
	"unicode/utf8"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/crossgui/gui"
)

// defaultTextSize is the pixel height of widget text when no explicit size
// is configured. The font atlas is 8x8, so glyphs render square.
const defaultTextSize = 14

type vertex struct {
	pos   [2]float32
	tex   [2]float32
	color [4]float32
}

// painter issues immediate draw calls against the window's GL context.
// One painter exists per window; all calls happen between begin and end
// with that context current.
type painter struct {
	shader    uint32
	vao, vbo  uint32
	fontTex   uint32
	projLoc   int32
	texLoc    int32
	useTexLoc int32
	rgbaLoc   int32

	width  int
	height int
	clips  []rect
}

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// Two texture modes: the font atlas carries coverage in the R channel and
// is tinted by the vertex color, bitmap widgets upload full RGBA images.
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D tex;
uniform bool useTexture;
uniform bool isRGBA;

void main() {
    if (useTexture) {
        vec4 texColor = texture(tex, TexCoord);
        if (isRGBA) {
            FragColor = texColor * Color;
        } else {
            FragColor = vec4(Color.rgb, Color.a * texColor.r);
        }
    } else {
        FragColor = Color;
    }
}
` + "\x00"

func newPainter() (*painter, error) {
	p := &painter{}

	var err error
	p.shader, err = compileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("opengl: %w", err)
	}

	p.projLoc = gl.GetUniformLocation(p.shader, gl.Str("projection\x00"))
	p.texLoc = gl.GetUniformLocation(p.shader, gl.Str("tex\x00"))
	p.useTexLoc = gl.GetUniformLocation(p.shader, gl.Str("useTexture\x00"))
	p.rgbaLoc = gl.GetUniformLocation(p.shader, gl.Str("isRGBA\x00"))

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)

	stride := int32(unsafe.Sizeof(vertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(vertex{}.tex))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, unsafe.Offsetof(vertex{}.color))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	p.fontTex = createFontTexture()
	return p, nil
}

func (p *painter) delete() {
	if p.fontTex != 0 {
		gl.DeleteTextures(1, &p.fontTex)
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.shader != 0 {
		gl.DeleteProgram(p.shader)
	}
}

// begin sets up the frame: orthographic projection in window pixels with
// the origin at the top left, Y growing downward.
func (p *painter) begin(width, height int, clear gui.Color) {
	p.width = width
	p.height = height
	p.clips = p.clips[:0]

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(float32(clear.R)/255, float32(clear.G)/255, float32(clear.B)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(0, 0, int32(width), int32(height))

	gl.UseProgram(p.shader)
	proj := ortho(0, float32(width), float32(height), 0, -1, 1)
	gl.UniformMatrix4fv(p.projLoc, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(p.texLoc, 0)
}

func (p *painter) end() {
	gl.Disable(gl.SCISSOR_TEST)
	gl.BindVertexArray(0)
}

// pushClip intersects the clip stack with r. Scissor Y is flipped to GL
// conventions.
func (p *painter) pushClip(r rect) {
	if len(p.clips) > 0 {
		r = r.intersect(p.clips[len(p.clips)-1])
	}
	p.clips = append(p.clips, r)
	p.applyClip(r)
}

func (p *painter) popClip() {
	p.clips = p.clips[:len(p.clips)-1]
	if len(p.clips) == 0 {
		gl.Scissor(0, 0, int32(p.width), int32(p.height))
		return
	}
	p.applyClip(p.clips[len(p.clips)-1])
}

func (p *painter) applyClip(r rect) {
	if r.w < 0 {
		r.w = 0
	}
	if r.h < 0 {
		r.h = 0
	}
	gl.Scissor(int32(r.x), int32(p.height-r.y-r.h), int32(r.w), int32(r.h))
}

func (p *painter) flush(vertices []vertex, tex uint32, isRGBA bool) {
	if len(vertices) == 0 {
		return
	}
	if tex != 0 {
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.Uniform1i(p.useTexLoc, 1)
		if isRGBA {
			gl.Uniform1i(p.rgbaLoc, 1)
		} else {
			gl.Uniform1i(p.rgbaLoc, 0)
		}
	} else {
		gl.Uniform1i(p.useTexLoc, 0)
	}

	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(unsafe.Sizeof(vertex{})),
		gl.Ptr(vertices), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)))
	gl.BindVertexArray(0)
}

func colorVec(c gui.Color, alpha float32) [4]float32 {
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, alpha}
}

func quad(x, y, w, h float32, u0, v0, u1, v1 float32, c [4]float32) []vertex {
	return []vertex{
		{pos: [2]float32{x, y}, tex: [2]float32{u0, v0}, color: c},
		{pos: [2]float32{x + w, y}, tex: [2]float32{u1, v0}, color: c},
		{pos: [2]float32{x + w, y + h}, tex: [2]float32{u1, v1}, color: c},
		{pos: [2]float32{x, y}, tex: [2]float32{u0, v0}, color: c},
		{pos: [2]float32{x + w, y + h}, tex: [2]float32{u1, v1}, color: c},
		{pos: [2]float32{x, y + h}, tex: [2]float32{u0, v1}, color: c},
	}
}

// rect fills r with a solid color.
func (p *painter) rect(r rect, c gui.Color) {
	p.rectAlpha(r, c, 1)
}

func (p *painter) rectAlpha(r rect, c gui.Color, alpha float32) {
	p.flush(quad(float32(r.x), float32(r.y), float32(r.w), float32(r.h), 0, 0, 0, 0, colorVec(c, alpha)), 0, false)
}

// frame draws a 1px outline around r.
func (p *painter) frame(r rect, c gui.Color) {
	col := colorVec(c, 1)
	x, y := float32(r.x), float32(r.y)
	w, h := float32(r.w), float32(r.h)
	var vs []vertex
	vs = append(vs, quad(x, y, w, 1, 0, 0, 0, 0, col)...)
	vs = append(vs, quad(x, y+h-1, w, 1, 0, 0, 0, 0, col)...)
	vs = append(vs, quad(x, y, 1, h, 0, 0, 0, 0, col)...)
	vs = append(vs, quad(x+w-1, y, 1, h, 0, 0, 0, 0, col)...)
	p.flush(vs, 0, false)
}

// text draws s at (x, y) top-left in the given pixel size. Bold is a
// double pass offset by one pixel, italic a shear of the glyph tops.
func (p *painter) text(x, y int, s string, c gui.Color, size int, style gui.TextStyle) {
	if s == "" {
		return
	}
	if size <= 0 {
		size = defaultTextSize
	}
	shear := float32(0)
	if style == gui.TextItalic || style == gui.TextBoldItalic {
		shear = float32(size) / 5
	}
	col := colorVec(c, 1)
	vs := glyphQuads(float32(x), float32(y), s, float32(size), shear, col)
	if style == gui.TextBold || style == gui.TextBoldItalic {
		vs = append(vs, glyphQuads(float32(x)+1, float32(y), s, float32(size), shear, col)...)
	}
	p.flush(vs, p.fontTex, false)
}

func glyphQuads(x, y float32, s string, size, shear float32, col [4]float32) []vertex {
	vs := make([]vertex, 0, utf8.RuneCountInString(s)*6)
	pen := x
	for _, ch := range s {
		if ch < 32 || ch > 127 {
			ch = '?'
		}
		idx := int(ch - 32)
		gc := float32(idx % 16)
		gr := float32(idx / 16)

		// 16x6 grid of 8x8 glyphs in a 128x48 atlas.
		u0 := gc * 8 / 128
		v0 := gr * 8 / 48
		u1 := (gc + 1) * 8 / 128
		v1 := (gr + 1) * 8 / 48

		vs = append(vs,
			vertex{pos: [2]float32{pen + shear, y}, tex: [2]float32{u0, v0}, color: col},
			vertex{pos: [2]float32{pen + size + shear, y}, tex: [2]float32{u1, v0}, color: col},
			vertex{pos: [2]float32{pen + size, y + size}, tex: [2]float32{u1, v1}, color: col},
			vertex{pos: [2]float32{pen + shear, y}, tex: [2]float32{u0, v0}, color: col},
			vertex{pos: [2]float32{pen + size, y + size}, tex: [2]float32{u1, v1}, color: col},
			vertex{pos: [2]float32{pen, y + size}, tex: [2]float32{u0, v1}, color: col},
		)
		pen += size
	}
	return vs
}

// textWidth measures s without touching the GL context. Glyphs are square,
// so the advance equals the pixel size.
func textWidth(s string, size int) int {
	if size <= 0 {
		size = defaultTextSize
	}
	return utf8.RuneCountInString(s) * size
}

// image draws an uploaded RGBA texture stretched over r.
func (p *painter) image(tex uint32, r rect) {
	white := [4]float32{1, 1, 1, 1}
	p.flush(quad(float32(r.x), float32(r.y), float32(r.w), float32(r.h), 0, 0, 1, 1, white), tex, true)
}

// uploadImage converts img to RGBA and uploads it as a GL texture.
func uploadImage(img image.Image) uint32 {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

func freeTexture(tex uint32) {
	if tex != 0 {
		gl.DeleteTextures(1, &tex)
	}
}

func compileProgram(vertexSource, fragmentSource string) (uint32, error) {
	compile := func(kind uint32, src string) (uint32, error) {
		shader := gl.CreateShader(kind)
		csource, free := gl.Strs(src)
		gl.ShaderSource(shader, 1, csource, nil)
		free()
		gl.CompileShader(shader)

		var status int32
		gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
		if status == gl.FALSE {
			var logLength int32
			gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
			log := make([]byte, logLength+1)
			gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
			gl.DeleteShader(shader)
			return 0, fmt.Errorf("shader compilation failed: %s", string(log))
		}
		return shader, nil
	}

	vs, err := compile(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, err
	}
	fs, err := compile(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}
	return program, nil
}

func ortho(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
