package hwy

import (
	"math"
	"testing"
)

func TestFloat64x4Arithmetic(t *testing.T) {
	a := LoadFloat64x4([]float64{1, 2, 3, 4, 99})
	b := SplatFloat64x4(0.5)

	if got, want := a.Add(b), (Float64x4{1.5, 2.5, 3.5, 4.5}); got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
	if got, want := a.Sub(b), (Float64x4{0.5, 1.5, 2.5, 3.5}); got != want {
		t.Errorf("Sub = %v, want %v", got, want)
	}
	if got, want := a.Mul(a), (Float64x4{1, 4, 9, 16}); got != want {
		t.Errorf("Mul = %v, want %v", got, want)
	}
}

func TestFloat64x8LessEqual(t *testing.T) {
	v := Float64x8{0, 1, 4, 4.0000001, -3, math.NaN(), math.Inf(1), math.Inf(-1)}
	m := v.LessEqual(SplatFloat64x8(4))
	want := Mask64x8{true, true, true, false, true, false, false, true}
	if m != want {
		t.Errorf("LessEqual = %v, want %v", m, want)
	}
}

func TestMaskReductions(t *testing.T) {
	tests := []struct {
		name     string
		m        Mask64x4
		allFalse bool
	}{
		{"none", Mask64x4{}, true},
		{"one", Mask64x4{false, false, true, false}, false},
		{"all", AllMask64x4(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.AllFalse(); got != tt.allFalse {
				t.Errorf("AllFalse = %v, want %v", got, tt.allFalse)
			}
		})
	}
}

func TestMaskAnd(t *testing.T) {
	a := Mask64x2{true, true}
	b := Mask64x2{true, false}
	if got, want := a.And(b), (Mask64x2{true, false}); got != want {
		t.Errorf("And = %v, want %v", got, want)
	}
	if !(Mask64x2{}).And(AllMask64x2()).AllFalse() {
		t.Error("empty.And(all) should have no active lanes")
	}
}

func TestMerge(t *testing.T) {
	mask := Mask64x4{true, false, true, false}

	counts := SplatUint64x4(7).Merge(SplatUint64x4(1), mask)
	if want := (Uint64x4{7, 1, 7, 1}); counts != want {
		t.Errorf("Uint64x4.Merge = %v, want %v", counts, want)
	}

	f := SplatFloat64x4(1).Merge(SplatFloat64x4(0), mask)
	if want := (Float64x4{1, 0, 1, 0}); f != want {
		t.Errorf("Float64x4.Merge = %v, want %v", f, want)
	}
}

func TestMaskedIncrement(t *testing.T) {
	// Lanes drop out one by one; each keeps the count it had when it left.
	count := SplatUint64x8(0)
	one := SplatUint64x8(1)
	for step := range 8 {
		var active Mask64x8
		for i := range active {
			active[i] = i >= step
		}
		count = count.Add(one).Merge(count, active)
	}
	for i, c := range count {
		if c != uint64(i+1) {
			t.Errorf("lane %d: count = %d, want %d", i, c, i+1)
		}
	}
}

func TestTruncateToUint32(t *testing.T) {
	u := Uint64x4{0, 1000, 1<<32 + 5, math.MaxUint64}
	dst := make([]uint32, 4)
	u.TruncateToUint32(dst)
	want := []uint32{0, 1000, 5, math.MaxUint32}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("Uint64x4 lane %d: got %d, want %d", i, dst[i], want[i])
		}
	}

	f := Float64x2{3, 1000}
	dst2 := make([]uint32, 2)
	f.TruncateToUint32(dst2)
	if dst2[0] != 3 || dst2[1] != 1000 {
		t.Errorf("Float64x2.TruncateToUint32 = %v, want [3 1000]", dst2)
	}
}

func TestLoadShortPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("LoadFloat64x8 of a 7-element slice should panic")
		}
	}()
	LoadFloat64x8(make([]float64, 7))
}
