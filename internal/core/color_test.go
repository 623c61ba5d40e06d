package core

import "testing"

func TestColorValues(t *testing.T) {
	// Palette order is shared with the terminal renderer.
	tests := []struct {
		c    Color
		want uint8
	}{
		{ColorDefault, 0},
		{ColorWhite, 7},
		{ColorBrightRed, 8},
		{ColorBrightWhite, 14},
		{ColorOrange, 15},
		{ColorSky, 18},
	}
	for _, tt := range tests {
		if uint8(tt.c) != tt.want {
			t.Errorf("color = %d, expected %d", tt.c, tt.want)
		}
	}
	if !ColorSky.Valid() || Color(200).Valid() {
		t.Error("Valid should accept palette entries only")
	}
	if !ColorBrightRed.Overlay() || ColorWhite.Overlay() {
		t.Error("only message box colors are overlays")
	}
}
