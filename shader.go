// shader.go - combines vertex color, texture sample, toon/highlight shading

/*
ds3draster - software rasterizer reproducing a legacy handheld console's
fixed-function 3D graphics pipeline, scanline by scanline.

(c) 2026 Zotley Systems
License: GPLv3 or later
*/

package ds3d

// RenderTables holds the global, read-only-per-frame lookup tables the
// shader and final pass consult.
type RenderTables struct {
	Toon [32]uint16 // 15-bit color per entry
	Edge [8]uint16  // 15-bit color per entry
	Fog  FogTables
}

// FogTables groups the fog-related global state.
type FogTables struct {
	Color   uint32 // RGBA5, alpha in bits 16..20
	Offset  int32
	Shift   uint32
	Density [33]uint8 // 0..127
}

func toonEntryRGB(entry uint16) (r, g, b int32) {
	return int32(entry & 0x1F), int32((entry >> 5) & 0x1F), int32((entry >> 10) & 0x1F)
}

// expand5to6 widens a 5-bit channel to 6 bits the way the toon/highlight
// path does: shift left one and add 1 unless the value was zero.
func expand5to6(v int32) int32 {
	out := (v << 1) & 0x3E
	if v != 0 {
		out++
	}
	return out
}

func clamp63(v int32) int32 {
	if v > 63 {
		return 63
	}
	if v < 0 {
		return 0
	}
	return v
}

// shadePixel implements the pixel shader (C4): it mutates vertex RGB for
// toon/highlight, optionally samples and combines a texture, and returns
// the packed output color with alpha resolved per the blend mode.
func shadePixel(p *Polygon, disp uint32, tables *RenderTables, vr, vg, vb int32, tex texSample, textured bool) pixel {
	polyAlpha := int32(p.polyAlpha())
	wireframe := p.wireframe()
	mode := p.blendMode()

	highlight := mode == BlendToon && disp&DispHighlightShading != 0
	toon := mode == BlendToon && !highlight

	var toonAdd [3]int32
	if highlight {
		vg, vb = vr, vr
		r, g, b := toonEntryRGB(tables.Toon[(vr>>1)&0x1F])
		toonAdd = [3]int32{expand5to6(r), expand5to6(g), expand5to6(b)}
	} else if toon {
		r, g, b := toonEntryRGB(tables.Toon[(vr>>1)&0x1F])
		vr, vg, vb = expand5to6(r), expand5to6(g), expand5to6(b)
	}

	var outR, outG, outB, outA int32

	if textured && disp&DispTexturesEnable != 0 {
		// Texel RGB comes out of the sampler at 5 bits per channel; expand
		// to the same 6-bit scale as vertex color before combining. Alpha
		// stays 5-bit: both blend formulas below combine it against the
		// also-5-bit polygon alpha.
		tr, tg, tb, ta := expand5to6(tex.R), expand5to6(tex.G), expand5to6(tex.B), tex.A
		if mode&1 != 0 { // decal (mode 1), also shadow (mode 3) per the odd-mode rule
			switch ta {
			case 0:
				outR, outG, outB = vr, vg, vb
			case 31:
				outR, outG, outB = tr, tg, tb
			default:
				outR = (tr*ta + vr*(31-ta)) >> 5
				outG = (tg*ta + vg*(31-ta)) >> 5
				outB = (tb*ta + vb*(31-ta)) >> 5
			}
			outA = polyAlpha
		} else { // modulate
			outR = (((tr + 1) * (vr + 1)) - 1) >> 6
			outG = (((tg + 1) * (vg + 1)) - 1) >> 6
			outB = (((tb + 1) * (vb + 1)) - 1) >> 6
			outA = (((ta + 1) * (polyAlpha + 1)) - 1) >> 5
		}
	} else {
		outR, outG, outB = vr, vg, vb
		outA = polyAlpha
	}

	if highlight {
		outR = clamp63(outR + toonAdd[0])
		outG = clamp63(outG + toonAdd[1])
		outB = clamp63(outB + toonAdd[2])
	}

	if wireframe {
		outA = 31
	}

	return packColor(outR, outG, outB, outA)
}
