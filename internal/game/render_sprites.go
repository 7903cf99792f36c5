package game

import "github.com/go-gl/gl/v4.1-core/gl"

// DrawSprites renders point sprites using the plain square program.
// buf format: [x, y, size, r, g, b, a, rotation] * N (8 floats per sprite).
func (r *Renderer) DrawSprites(buf []float32, fbW, fbH int) {
	r.drawPoints(r.spriteProg, r.spUCanvas, r.spUScale, buf, fbW, false)
}

// DrawGlow renders light sprites with additive blending and radial
// falloff. RGB values should be pre-multiplied by desired brightness.
func (r *Renderer) DrawGlow(buf []float32, fbW, fbH int) {
	r.drawPoints(r.glowProg, r.glUCanvas, r.glUScale, buf, fbW, true)
}

// DrawBlocks renders grid blocks using the bevelled box program.
func (r *Renderer) DrawBlocks(buf []float32, fbW, fbH int) {
	r.drawPoints(r.blockProg, r.blUCanvas, r.blUScale, buf, fbW, false)
}

func (r *Renderer) drawPoints(prog uint32, uCanvas, uScale int32, buf []float32, fbW int, additive bool) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}

	gl.UseProgram(prog)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(uCanvas, float32(CanvasWidth), float32(CanvasHeight))
	gl.Uniform1f(uScale, canvasScale(fbW))

	gl.Enable(gl.BLEND)
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// DrawLines renders canvas-space line segments (grid, skeleton bones).
// buf format: [x, y, r, g, b, a] * 2N (6 floats per vertex, 2 per segment).
func (r *Renderer) DrawLines(buf []float32, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 6
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}
	count -= count % 2

	gl.UseProgram(r.lineProg)
	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)

	gl.Uniform2f(r.lineUCanvas, float32(CanvasWidth), float32(CanvasHeight))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*6*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(count))

	gl.Disable(gl.BLEND)
}
