package math

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1, 0, 10) = %d", got)
	}
	if got := Clamp(float32(11.5), 0, 10); got != 10 {
		t.Errorf("Clamp(11.5, 0, 10) = %f", got)
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(float32(2), 7); got != 2 {
		t.Errorf("Min(2, 7) = %f", got)
	}
	if got := Max(float32(2), 7); got != 7 {
		t.Errorf("Max(2, 7) = %f", got)
	}
	if got := Min(3, 3); got != 3 {
		t.Errorf("Min(3, 3) = %d", got)
	}
}
