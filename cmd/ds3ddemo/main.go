// main.go - terminal preview harness for the ds3d rasterizer

/*
ds3draster - software rasterizer reproducing a legacy handheld console's
fixed-function 3D graphics pipeline, scanline by scanline.

(c) 2026 Zotley Systems
License: GPLv3 or later
*/

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	ds3d "github.com/zotley-systems/ds3draster"
)

func banner() {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FD7FF"))
	fmt.Println(title.Render("ds3ddemo"))
	fmt.Println("Terminal preview of the scanline rasterizer.")
}

func main() {
	banner()

	var (
		scene    string
		threaded bool
		cols     int
		rows     int
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&scene, "scene", "flat", "scene to render: flat|textured|translucent|all")
	flagSet.BoolVar(&threaded, "threaded", false, "drive the rasterizer through its background worker")
	flagSet.IntVar(&cols, "cols", 64, "terminal columns to downsample to")
	flagSet.IntVar(&rows, "rows", 32, "terminal rows to downsample to")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ds3ddemo -scene flat|textured|translucent|all [-threaded] [-cols 64] [-rows 32]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	scenes := []string{scene}
	if scene == "all" {
		scenes = []string{"flat", "textured", "translucent"}
	}

	for _, name := range scenes {
		fmt.Printf("\n-- %s --\n", name)
		if err := runScene(name, threaded, cols, rows); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func runScene(name string, threaded bool, cols, rows int) error {
	texVRAM, palVRAM := buildVRAM()

	rz, err := ds3d.NewRasterizer(
		ds3d.WithThreaded(threaded),
		ds3d.WithDispCnt(ds3d.DispTexturesEnable|ds3d.DispAlphaBlend|ds3d.DispAntialiasing|ds3d.DispEdgeMarking),
		ds3d.WithClearAttributes(0, 0, 0x7FFFF),
		ds3d.WithAlphaReference(0),
		ds3d.WithVRAM(ds3d.VRAMSource{Texture: texVRAM, Palette: palVRAM}),
	)
	if err != nil {
		return err
	}
	defer rz.Stop()

	polys, err := buildScene(name)
	if err != nil {
		return err
	}

	rz.RenderFrame(polys, false)
	rz.VCount144()

	printFrame(rz, cols, rows)
	return nil
}

func buildScene(name string) ([]*ds3d.Polygon, error) {
	switch name {
	case "flat":
		return []*ds3d.Polygon{flatTriangle()}, nil
	case "textured":
		return []*ds3d.Polygon{texturedQuad()}, nil
	case "translucent":
		return []*ds3d.Polygon{opaqueBackTriangle(), translucentFrontTriangle()}, nil
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

func flatTriangle() *ds3d.Polygon {
	verts := []ds3d.Vertex{
		{X: 60, Y: 30, Z: 0, W: 4096, R: 63, G: 0, B: 0},
		{X: 200, Y: 30, Z: 0, W: 4096, R: 0, G: 63, B: 0},
		{X: 130, Y: 160, Z: 0, W: 4096, R: 0, G: 0, B: 63},
	}
	attr := packPolyAttr(31, ds3d.BlendModulate, 1)
	return buildPolygon(verts, attr, 0, 0)
}

func texturedQuad() *ds3d.Polygon {
	const texelsPerSide = 16 // 1/16-texel fixed-point scale for S/T
	verts := []ds3d.Vertex{
		{X: 40, Y: 20, Z: 0, W: 4096, R: 63, G: 63, B: 63, S: 0, T: 0},
		{X: 216, Y: 20, Z: 0, W: 4096, R: 63, G: 63, B: 63, S: 8 * texelsPerSide, T: 0},
		{X: 216, Y: 170, Z: 0, W: 4096, R: 63, G: 63, B: 63, S: 8 * texelsPerSide, T: 8 * texelsPerSide},
		{X: 40, Y: 170, Z: 0, W: 4096, R: 63, G: 63, B: 63, S: 0, T: 8 * texelsPerSide},
	}
	attr := packPolyAttr(31, ds3d.BlendModulate, 2)
	texParam := uint32(ds3d.TexFormat4Color) << 26 // base 0, 8x8, no wrap
	return buildPolygon(verts, attr, texParam, 0)
}

func opaqueBackTriangle() *ds3d.Polygon {
	verts := []ds3d.Vertex{
		{X: 50, Y: 50, Z: 50, W: 4096, R: 20, G: 40, B: 63},
		{X: 210, Y: 50, Z: 50, W: 4096, R: 20, G: 40, B: 63},
		{X: 130, Y: 170, Z: 50, W: 4096, R: 20, G: 40, B: 63},
	}
	attr := packPolyAttr(31, ds3d.BlendModulate, 3)
	return buildPolygon(verts, attr, 0, 0)
}

func translucentFrontTriangle() *ds3d.Polygon {
	verts := []ds3d.Vertex{
		{X: 90, Y: 90, Z: -10, W: 4096, R: 63, G: 63, B: 0},
		{X: 190, Y: 130, Z: -10, W: 4096, R: 63, G: 63, B: 0},
		{X: 100, Y: 180, Z: -10, W: 4096, R: 63, G: 63, B: 0},
	}
	attr := packPolyAttr(16, ds3d.BlendModulate, 4)
	return buildPolygon(verts, attr, 0, 0)
}

// packPolyAttr assembles a polygon attribute word from the fields the
// rasterizer actually reads: alpha, blend mode and opaque/translucent id.
func packPolyAttr(alpha uint32, blendMode uint32, id uint32) uint32 {
	return (alpha&0x1F)<<16 | (blendMode&3)<<4 | (id&0x3F)<<24
}

// buildPolygon fills in the derived fields (top/bottom vertex, y bounds)
// a geometry front-end would normally compute during clipping.
func buildPolygon(verts []ds3d.Vertex, attr, texParam, texPal uint32) *ds3d.Polygon {
	top, bottom := 0, 0
	for i, v := range verts {
		if v.Y < verts[top].Y {
			top = i
		}
		if v.Y > verts[bottom].Y {
			bottom = i
		}
	}
	return &ds3d.Polygon{
		Vertices:     verts,
		Attr:         attr,
		TexParam:     texParam,
		TexPal:       texPal,
		TopVertex:    top,
		BottomVertex: bottom,
		YTop:         verts[top].Y,
		YBottom:      verts[bottom].Y,
		FacingView:   true,
	}
}

// buildVRAM synthesizes an 8x8, 4-color texture (a four-quadrant swatch)
// plus its palette, backed by power-of-two-sized byte slices so the
// masked VRAM accessors wrap the way real VRAM does.
func buildVRAM() (ds3d.TextureVRAM, ds3d.PaletteVRAM) {
	tex := make([]byte, 1<<16)
	for t := 0; t < 8; t++ {
		for block := 0; block < 2; block++ {
			var b byte
			for i := 0; i < 4; i++ {
				s := block*4 + i
				idx := byte((s/4 + t/4) % 4)
				b |= idx << (uint(i) * 2)
			}
			tex[t*2+block] = b
		}
	}

	pal := make([]byte, 1<<15)
	entries := []uint16{
		0,                     // index 0: black, transparent for color0Transparent formats
		31,                    // index 1: red
		31 << 5,               // index 2: green
		31 << 10,              // index 3: blue
	}
	for i, e := range entries {
		pal[i*2] = byte(e)
		pal[i*2+1] = byte(e >> 8)
	}

	return ds3d.NewTextureVRAM(tex), ds3d.NewPaletteVRAM(pal)
}

// printFrame drains every scanline via GetLine exactly once, in order,
// matching the one-ticket-per-line contract, then downsamples the
// collected frame for the terminal.
func printFrame(rz *ds3d.Rasterizer, cols, rows int) {
	frame := make([][]uint32, ds3d.ScreenHeight)
	for y := 0; y < ds3d.ScreenHeight; y++ {
		line := rz.GetLine(y)
		frame[y] = append([]uint32(nil), line...)
	}

	for row := 0; row < rows; row++ {
		srcY := row * ds3d.ScreenHeight / rows
		line := frame[srcY]
		for col := 0; col < cols; col++ {
			srcX := col * ds3d.ScreenWidth / cols
			style := lipgloss.NewStyle().Background(lipgloss.Color(pixelHex(line[srcX])))
			fmt.Print(style.Render("  "))
		}
		fmt.Println()
	}
}

func pixelHex(p uint32) string {
	r := (p & 0x3F) * 255 / 63
	g := ((p >> 8) & 0x3F) * 255 / 63
	b := ((p >> 16) & 0x3F) * 255 / 63
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
