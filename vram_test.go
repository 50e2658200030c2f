package ds3d

import "testing"

func TestTextureVRAM_WrapsAddressesToBackingSliceLength(t *testing.T) {
	data := make([]byte, 16)
	data[3] = 0xAB
	tex := NewTextureVRAM(data)

	if got := tex.byteAt(3); got != 0xAB {
		t.Errorf("byteAt(3): got %#x, want %#x", got, 0xAB)
	}
	if got := tex.byteAt(3 + 16); got != 0xAB {
		t.Errorf("byteAt(19): got %#x, want wraparound to same byte %#x", got, 0xAB)
	}
}

func TestTextureVRAM_EmptyBackingSliceReadsAsZero(t *testing.T) {
	var tex TextureVRAM
	if got := tex.byteAt(0); got != 0 {
		t.Errorf("byteAt on empty VRAM: got %d, want 0", got)
	}
	if got := tex.u16At(100); got != 0 {
		t.Errorf("u16At on empty VRAM: got %d, want 0", got)
	}
}

func TestTextureVRAM_U16AtIsLittleEndian(t *testing.T) {
	data := []byte{0x34, 0x12}
	tex := NewTextureVRAM(data)
	if got := tex.u16At(0); got != 0x1234 {
		t.Errorf("u16At: got %#x, want %#x", got, 0x1234)
	}
}

func TestPaletteVRAM_WrapsAddressesToBackingSliceLength(t *testing.T) {
	data := make([]byte, 8)
	data[0], data[1] = 0x78, 0x56
	pal := NewPaletteVRAM(data)

	if got := pal.u16At(0); got != 0x5678 {
		t.Errorf("u16At(0): got %#x, want %#x", got, 0x5678)
	}
	if got := pal.u16At(8); got != 0x5678 {
		t.Errorf("u16At(8): got %#x, want wraparound to the same entry %#x", got, 0x5678)
	}
}

func TestPaletteVRAM_EmptyBackingSliceReadsAsZero(t *testing.T) {
	var pal PaletteVRAM
	if got := pal.u16At(0); got != 0 {
		t.Errorf("u16At on empty palette VRAM: got %d, want 0", got)
	}
}

func TestVRAMSource_DirtyReflectsEitherHook(t *testing.T) {
	v := VRAMSource{}
	if v.dirty() {
		t.Error("no hooks configured: dirty() should default to false")
	}

	v.TextureDirty = func() bool { return false }
	v.PaletteDirty = func() bool { return true }
	if !v.dirty() {
		t.Error("palette hook reporting dirty should make dirty() true")
	}

	v.TextureDirty = func() bool { return true }
	v.PaletteDirty = func() bool { return false }
	if !v.dirty() {
		t.Error("texture hook reporting dirty should make dirty() true")
	}
}
