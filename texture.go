// texture.go - texel fetch and decode for all seven texture formats

/*
ds3draster - software rasterizer reproducing a legacy handheld console's
fixed-function 3D graphics pipeline, scanline by scanline.

(c) 2026 Zotley Systems
License: GPLv3 or later
*/

package ds3d

// texSample is one decoded texel: 5-bit-per-channel color plus 5-bit alpha.
type texSample struct {
	R, G, B, A int32
}

// textureParams decodes the fields packed into a polygon's texparam word.
type textureParams struct {
	base                 uint32
	width, height        int32
	wrapX, wrapY         bool
	flipX, flipY         bool
	color0Transparent    bool
	format               uint32
}

func decodeTextureParams(texparam uint32) textureParams {
	return textureParams{
		base:              (texparam & 0xFFFF) << 3,
		width:             8 << ((texparam >> 20) & 7),
		height:            8 << ((texparam >> 23) & 7),
		wrapX:             texparam&(1<<16) != 0,
		wrapY:             texparam&(1<<17) != 0,
		flipX:             texparam&(1<<18) != 0,
		flipY:             texparam&(1<<19) != 0,
		color0Transparent: texparam&(1<<29) != 0,
		format:            (texparam >> 26) & 7,
	}
}

func wrapCoord(v, size int32, wrap, flip bool) int32 {
	if wrap {
		m := v & (size - 1)
		if flip && (v&size) != 0 {
			return (size - 1) - m
		}
		return m
	}
	if v < 0 {
		return 0
	}
	if v >= size {
		return size - 1
	}
	return v
}

func paletteColor15(pal PaletteVRAM, base uint32, index uint32) (r, g, b int32) {
	entry := pal.u16At(base + index*2)
	return int32(entry & 0x1F), int32((entry >> 5) & 0x1F), int32((entry >> 10) & 0x1F)
}

// sampleTexture wraps (s,t) per the polygon's wrap/flip settings, fetches
// the texel from whichever of the seven formats is active, and returns the
// decoded color and alpha. Format 0 is the caller's responsibility to skip
// (it returns a fully transparent sample here rather than special-casing
// callers further).
func sampleTexture(tex TextureVRAM, pal PaletteVRAM, tp textureParams, texPal uint32, s, t int32) texSample {
	if tp.format == TexFormatNone {
		return texSample{}
	}

	s = wrapCoord(s, tp.width, tp.wrapX, tp.flipX)
	t = wrapCoord(t, tp.height, tp.wrapY, tp.flipY)

	switch tp.format {
	case TexFormatA3I5:
		addr := tp.base + uint32(t*tp.width+s)
		p := tex.byteAt(addr)
		idx := uint32(p) & 0x1F
		r, g, b := paletteColor15(pal, texPal<<4, idx)
		alpha := int32(((p >> 3) & 0x1C) + (p >> 6))
		return texSample{r, g, b, alpha}

	case TexFormat4Color:
		addr := tp.base + uint32((t*tp.width+s)>>2)
		p := tex.byteAt(addr)
		shift := uint(s&3) * 2
		idx := uint32(p>>shift) & 0x3
		r, g, b := paletteColor15(pal, texPal<<3, idx)
		return texSample{r, g, b, indexedAlpha(idx, tp.color0Transparent)}

	case TexFormat16Color:
		addr := tp.base + uint32((t*tp.width+s)>>1)
		p := tex.byteAt(addr)
		shift := uint(s&1) * 4
		idx := uint32(p>>shift) & 0xF
		r, g, b := paletteColor15(pal, texPal<<4, idx)
		return texSample{r, g, b, indexedAlpha(idx, tp.color0Transparent)}

	case TexFormat256Color:
		addr := tp.base + uint32(t*tp.width+s)
		idx := uint32(tex.byteAt(addr))
		r, g, b := paletteColor15(pal, texPal<<4, idx)
		return texSample{r, g, b, indexedAlpha(idx, tp.color0Transparent)}

	case TexFormatCompressed:
		return sampleCompressed(tex, pal, tp, texPal, s, t)

	case TexFormatA5I3:
		addr := tp.base + uint32(t*tp.width+s)
		p := tex.byteAt(addr)
		idx := uint32(p) & 0x7
		r, g, b := paletteColor15(pal, texPal<<4, idx)
		alpha := int32(p >> 3)
		return texSample{r, g, b, alpha}

	case TexFormatDirectColor:
		addr := tp.base + uint32(t*tp.width+s)*2
		entry := tex.u16At(addr)
		r, g, b := int32(entry&0x1F), int32((entry>>5)&0x1F), int32((entry>>10)&0x1F)
		alpha := int32(0)
		if entry&0x8000 != 0 {
			alpha = 31
		}
		return texSample{r, g, b, alpha}
	}

	return texSample{}
}

func indexedAlpha(idx uint32, color0Transparent bool) int32 {
	if idx == 0 && color0Transparent {
		return 0
	}
	return 31
}

// sampleCompressed decodes the 4x4-block compressed format (format 5): a
// 2-bit index per texel plus an auxiliary 16-bit palette-info word whose
// top two bits pick one of four interpretations for indices 2 and 3.
func sampleCompressed(tex TextureVRAM, pal PaletteVRAM, tp textureParams, texPal uint32, s, t int32) texSample {
	vramaddr := tp.base + uint32((t&0x3FC)*(tp.width>>2)) + uint32(s&0x3FC)
	vramaddr += uint32(t & 0x3)

	val := tex.byteAt(vramaddr) >> (2 * uint(s&0x3))
	index := uint32(val) & 0x3

	slot1addr := uint32(0x20000) + ((vramaddr & 0x1FFFC) >> 1)
	if vramaddr >= 0x40000 {
		slot1addr += 0x10000
	}
	palinfo := tex.u16At(slot1addr)
	paloffset := (uint32(palinfo) & 0x3FFF) << 2
	mode := palinfo >> 14

	base := texPal<<4 + paloffset

	switch index {
	case 0:
		r, g, b := paletteColor15(pal, base, 0)
		return texSample{r, g, b, 31}
	case 1:
		r, g, b := paletteColor15(pal, base, 1)
		return texSample{r, g, b, 31}
	case 2:
		switch mode {
		case 0, 2:
			r, g, b := paletteColor15(pal, base, 2)
			return texSample{r, g, b, 31}
		case 1:
			r0, g0, b0 := paletteColor15(pal, base, 0)
			r1, g1, b1 := paletteColor15(pal, base, 1)
			return texSample{(r0 + r1) >> 1, (g0 + g1) >> 1, (b0 + b1) >> 1, 31}
		default: // 3
			r0, g0, b0 := paletteColor15(pal, base, 0)
			r1, g1, b1 := paletteColor15(pal, base, 1)
			return texSample{
				(r0*5 + r1*3) >> 3,
				(g0*5 + g1*3) >> 3,
				(b0*5 + b1*3) >> 3,
				31,
			}
		}
	default: // 3
		switch mode {
		case 2:
			r, g, b := paletteColor15(pal, base, 3)
			return texSample{r, g, b, 31}
		case 3:
			r0, g0, b0 := paletteColor15(pal, base, 0)
			r1, g1, b1 := paletteColor15(pal, base, 1)
			return texSample{
				(r0*3 + r1*5) >> 3,
				(g0*3 + g1*5) >> 3,
				(b0*3 + b1*5) >> 3,
				31,
			}
		default: // 0, 1
			return texSample{0, 0, 0, 0}
		}
	}
}
