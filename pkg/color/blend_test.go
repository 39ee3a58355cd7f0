package color

import (
	"testing"
)

func TestLightenDarken(t *testing.T) {
	orange := FromRGB(249, 115, 22)

	if got := orange.Lighten(1.0); got != White {
		t.Errorf("Lighten(1.0) = %v, want %v", got, White)
	}
	if got := orange.Darken(1.0); got != Black {
		t.Errorf("Darken(1.0) = %v, want %v", got, Black)
	}
	if got := orange.Lighten(0.0); got != orange {
		t.Errorf("Lighten(0.0) = %v, want %v", got, orange)
	}
	if got := orange.Darken(0.0); got != orange {
		t.Errorf("Darken(0.0) = %v, want %v", got, orange)
	}

	lighter := orange.Lighten(0.5).ToRGB()
	if lighter.R <= orange.ToRGB().R || lighter.G <= orange.ToRGB().G || lighter.B <= orange.ToRGB().B {
		t.Errorf("Lighten(0.5) = %v did not move toward white", lighter)
	}
}

func TestMix(t *testing.T) {
	if got := Black.Mix(White, 0.5); got != FromRGB(128, 128, 128) {
		t.Errorf("Mix(white, 0.5) = %v, want rgb(128, 128, 128)", got)
	}
	if got := Black.Mix(White, 1.0); got != White {
		t.Errorf("Mix(white, 1.0) = %v, want %v", got, White)
	}
	if got := Black.Mix(White, 0.0); got != Black {
		t.Errorf("Mix(white, 0.0) = %v, want %v", got, Black)
	}

	// Blend factors outside 0..1 are clamped.
	if got := Black.Mix(White, 2.0); got != White {
		t.Errorf("Mix(white, 2.0) = %v, want %v", got, White)
	}
	if got := Black.Mix(White, -1.0); got != Black {
		t.Errorf("Mix(white, -1.0) = %v, want %v", got, Black)
	}
}

func TestBlendDropsAlpha(t *testing.T) {
	c := FromRGBA(10, 10, 10, 50).Lighten(0.0)
	if c.IsRGBA() {
		t.Error("Lighten() kept the RGBA form")
	}
	if c != FromRGB(10, 10, 10) {
		t.Errorf("Lighten(0.0) = %v, want rgb(10, 10, 10)", c)
	}
}
