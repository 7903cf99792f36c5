package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer is the presentation surface: it draws the grid, blocks, hand
// skeleton, cursor, and particles, and mutates nothing.
type Renderer struct {
	// Sprite programs share one VAO/VBO (same vertex layout).
	spriteProg uint32
	glowProg   uint32
	blockProg  uint32
	spriteVAO  uint32
	spriteVBO  uint32

	spUCanvas int32
	spUScale  int32
	glUCanvas int32
	glUScale  int32
	blUCanvas int32
	blUScale  int32

	// Line program: grid and skeleton bones.
	lineProg   uint32
	lineVAO    uint32
	lineVBO    uint32
	lineUCanvas int32
}

func NewRenderer() (*Renderer, error) {
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(spriteProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}
	blockProg, err := linkProgram(spriteVertSrc, blockFragSrc)
	if err != nil {
		gl.DeleteProgram(spriteProg)
		gl.DeleteProgram(glowProg)
		return nil, fmt.Errorf("block program: %w", err)
	}
	lineProg, err := linkProgram(lineVertSrc, lineFragSrc)
	if err != nil {
		gl.DeleteProgram(spriteProg)
		gl.DeleteProgram(glowProg)
		gl.DeleteProgram(blockProg)
		return nil, fmt.Errorf("line program: %w", err)
	}

	r := &Renderer{
		spriteProg: spriteProg,
		glowProg:   glowProg,
		blockProg:  blockProg,
		lineProg:   lineProg,
	}

	// Sprite VAO/VBO: streaming point sprites, 8 floats each
	// (x, y, size, r, g, b, a, rotation).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSpriteRender*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	r.spUCanvas = gl.GetUniformLocation(spriteProg, gl.Str("uCanvas\x00"))
	r.spUScale = gl.GetUniformLocation(spriteProg, gl.Str("uScale\x00"))
	r.glUCanvas = gl.GetUniformLocation(glowProg, gl.Str("uCanvas\x00"))
	r.glUScale = gl.GetUniformLocation(glowProg, gl.Str("uScale\x00"))
	r.blUCanvas = gl.GetUniformLocation(blockProg, gl.Str("uCanvas\x00"))
	r.blUScale = gl.GetUniformLocation(blockProg, gl.Str("uScale\x00"))

	// Line VAO/VBO: streaming line vertices, 6 floats each
	// (x, y, r, g, b, a).
	var lVAO, lVBO uint32
	gl.GenVertexArrays(1, &lVAO)
	gl.GenBuffers(1, &lVBO)
	gl.BindVertexArray(lVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, lVBO)

	lineStride := int32(6 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSpriteRender*int(lineStride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, lineStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, lineStride, glOffset(2*4))
	r.lineVAO = lVAO
	r.lineVBO = lVBO

	r.lineUCanvas = gl.GetUniformLocation(lineProg, gl.Str("uCanvas\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.spriteVBO, r.lineVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.spriteVAO, r.lineVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.spriteProg, r.glowProg, r.blockProg, r.lineProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(
		float32(Palette.Background.R)/255,
		float32(Palette.Background.G)/255,
		float32(Palette.Background.B)/255,
		1.0,
	)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// canvasScale maps canvas pixels to framebuffer pixels (for point sizes).
func canvasScale(fbW int) float32 {
	return float32(fbW) / float32(CanvasWidth)
}
