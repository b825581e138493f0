package util

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		value, min, max, want int
	}{
		{5, 1, 10, 5},
		{0, 1, 10, 1},
		{11, 1, 10, 10},
		{1, 1, 10, 1},
		{10, 1, 10, 10},
		{-3, 0, 0, 0},
	}
	for _, c := range cases {
		if got := Clamp(c.value, c.min, c.max); got != c.want {
			t.Fatalf("Clamp(%d, %d, %d) = %d, want %d", c.value, c.min, c.max, got, c.want)
		}
	}
}

func TestBoolToInt(t *testing.T) {
	if BoolToInt(true) != 1 {
		t.Fatalf("BoolToInt(true) should be 1")
	}
	if BoolToInt(false) != 0 {
		t.Fatalf("BoolToInt(false) should be 0")
	}
}

func TestPtrDeref(t *testing.T) {
	p := Ptr(42)
	if *p != 42 {
		t.Fatalf("Ptr(42) = %d", *p)
	}
	if Deref(p) != 42 {
		t.Fatalf("Deref(p) = %d", Deref(p))
	}
	var nilPtr *int
	if Deref(nilPtr) != 0 {
		t.Fatalf("Deref(nil) should be zero value")
	}
}
