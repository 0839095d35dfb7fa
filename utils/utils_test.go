package utils

import (
	"math"
	"testing"
)

func TestLockFreeCircularBuffer(t *testing.T) {
	cb := NewLockFreeCircularBuffer[int](3)
	if cb.Len() != 0 || len(cb.GetAll()) != 0 {
		t.Fatalf("new buffer not empty")
	}
	for i := 1; i <= 5; i++ {
		v := i
		cb.Add(&v)
	}
	all := cb.GetAll()
	if cb.Len() != 3 || len(all) != 3 {
		t.Fatalf("len = %d, items = %d", cb.Len(), len(all))
	}
	for i, want := range []int{3, 4, 5} {
		if *all[i] != want {
			t.Fatalf("item %d = %d, want %d", i, *all[i], want)
		}
	}

	small := NewLockFreeCircularBuffer[int](0)
	a, b := 1, 2
	small.Add(&a)
	small.Add(&b)
	if got := small.GetAll(); len(got) != 1 || *got[0] != 2 {
		t.Fatalf("unexpected items: %v", got)
	}
}

func TestMinMaxOf(t *testing.T) {
	if v, ok := MinOf([]uint64{5, 2, 9}); !ok || v != 2 {
		t.Fatalf("min = %d", v)
	}
	if v, ok := MaxOf([]uint64{5, 2, 9}); !ok || v != 9 {
		t.Fatalf("max = %d", v)
	}
	if _, ok := MinOf([]int{}); ok {
		t.Fatalf("min of empty list")
	}
	if _, ok := MaxOf[string](nil); ok {
		t.Fatalf("max of empty list")
	}
}

func TestCheckedArithmetic(t *testing.T) {
	if v, ok := AddUint64(2, 3); !ok || v != 5 {
		t.Fatalf("add = %d", v)
	}
	if _, ok := AddUint64(math.MaxUint64, 1); ok {
		t.Fatalf("add overflow not reported")
	}
	if v, ok := MulUint64(1<<32-1, 1<<32); !ok || v != (1<<32-1)<<32 {
		t.Fatalf("mul = %d", v)
	}
	if _, ok := MulUint64(1<<32, 1<<32); ok {
		t.Fatalf("mul overflow not reported")
	}
	if BoolToUint64(true) != 1 || BoolToUint64(false) != 0 {
		t.Fatalf("bool conversion")
	}
}

func TestSplitTValue(t *testing.T) {
	cases := []struct {
		input, typ, data string
	}{
		{"b'1101'", "b", "1101"},
		{"H'D2FE28'", "h", "D2FE28"},
		{"D2FE28", "h", "D2FE28"},
		{"''", "h", "''"},
		{"x''", "x", ""},
	}
	for _, c := range cases {
		typ, data := SplitTValue(c.input, "h")
		if typ != c.typ || data != c.data {
			t.Fatalf("%q: got (%q, %q)", c.input, typ, data)
		}
	}
}

func TestCatch(t *testing.T) {
	var reason any
	func() {
		defer Catch(func(r any) { reason = r })
		panic("boom")
	}()
	if reason != "boom" {
		t.Fatalf("reason = %v", reason)
	}

	reason = nil
	func() {
		defer Catch(func(r any) { reason = r })
	}()
	if reason != nil {
		t.Fatalf("handler called without a panic: %v", reason)
	}
}
