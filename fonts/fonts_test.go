package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFontWithSize(t *testing.T) {
	if err := LoadFontWithSize(HUD, goregular.TTF, 16); err != nil {
		t.Fatalf("load: %v", err)
	}
	if HUD.Get() == nil {
		t.Fatalf("expected a face")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont(Small, []byte("not a font")); err == nil {
		t.Fatalf("expected a parse error")
	}
}
