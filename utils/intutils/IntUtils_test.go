package intutils

import "testing"

func TestMax(t *testing.T) {
	if m := Max(3, -2, 7); m != 7 {
		t.Errorf("max: want 7, have %d", m)
	}
	if m := Max(-4); m != -4 {
		t.Errorf("max: want -4, have %d", m)
	}
}

func TestAbs(t *testing.T) {
	if a := Abs(-5); a != 5 {
		t.Errorf("abs: want 5, have %d", a)
	}
	if a := Abs(0); a != 0 {
		t.Errorf("abs: want 0, have %d", a)
	}
}
