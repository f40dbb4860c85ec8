package jsonval

import (
	"encoding/json"
	"math"
	"testing"
)

func TestFloatLiteralShapes(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want string
	}{
		{"fraction", 1.5, "1.5"},
		{"whole", 2880, "2880.0"},
		{"negative whole", -12, "-12.0"},
		{"small", 0.001, "0.001"},
		{"exponent", 1e21, "1e+21"},
		{"nan", math.NaN(), "0.0"},
		{"positive inf", math.Inf(1), "1.7976931348623157e+308"},
		{"negative inf", math.Inf(-1), "-1.7976931348623157e+308"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Float(tc.in)
			if got.Kind != NumberKind {
				t.Fatalf("Float(%v) kind = %v, want number", tc.in, got.Kind)
			}
			if string(got.Num) != tc.want {
				t.Errorf("Float(%v) literal = %q, want %q", tc.in, got.Num, tc.want)
			}
		})
	}
}

func TestIntLiteral(t *testing.T) {
	if got := Int(42); string(got.Num) != "42" {
		t.Errorf("Int(42) literal = %q, want 42", got.Num)
	}
	if got := Int(-7); string(got.Num) != "-7" {
		t.Errorf("Int(-7) literal = %q, want -7", got.Num)
	}
}

func TestIsIntLiteral(t *testing.T) {
	cases := []struct {
		lit  string
		want bool
	}{
		{"42", true},
		{"-7", true},
		{"0", true},
		{"42.0", false},
		{"1.5", false},
		{"4e2", false},
		{"1E-5", false},
	}
	for _, tc := range cases {
		if got := IsIntLiteral(json.Number(tc.lit)); got != tc.want {
			t.Errorf("IsIntLiteral(%q) = %v, want %v", tc.lit, got, tc.want)
		}
	}
}

func TestEqualComparesLiterals(t *testing.T) {
	if Equal(Number("1"), Number("1.0")) {
		t.Error("1 and 1.0 should not be equal: literal spelling differs")
	}
	if !Equal(Number("1.5"), Number("1.5")) {
		t.Error("identical literals should be equal")
	}
}

func TestEqualObjectOrder(t *testing.T) {
	a := NewObject()
	a.Set("x", Int(1))
	a.Set("y", Int(2))

	b := NewObject()
	b.Set("y", Int(2))
	b.Set("x", Int(1))

	if Equal(a.Value(), b.Value()) {
		t.Error("objects with different member order should not be equal")
	}

	c := NewObject()
	c.Set("x", Int(1))
	c.Set("y", Int(2))
	if !Equal(a.Value(), c.Value()) {
		t.Error("objects with same members in same order should be equal")
	}
}

func TestObjectSetKeepsPosition(t *testing.T) {
	o := NewObject()
	o.Set("a", Int(1))
	o.Set("b", Int(2))
	o.Set("a", Int(3))

	keys := o.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("keys = %v, want [a b]", keys)
	}
	v, _ := o.Get("a")
	if string(v.Num) != "3" {
		t.Errorf("a = %q, want 3", v.Num)
	}
}

func TestObjectDelete(t *testing.T) {
	o := NewObject()
	o.Set("a", Int(1))
	o.Set("b", Int(2))
	o.Set("c", Int(3))
	o.Delete("b")

	keys := o.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "c" {
		t.Fatalf("keys after delete = %v, want [a c]", keys)
	}
	if o.Has("b") {
		t.Error("b should be gone")
	}
}

func TestCloneIsDeep(t *testing.T) {
	inner := NewObject()
	inner.Set("w", Int(10))
	outer := NewObject()
	outer.Set("nested", inner.Value())
	outer.Set("list", Array(Int(1), Int(2)))

	orig := outer.Value()
	clone := orig.Clone()

	clone.Obj.Set("added", Bool(true))
	nested, _ := clone.Obj.Get("nested")
	nested.Obj.Set("w", Int(99))

	if orig.Obj.Has("added") {
		t.Error("clone Set leaked into original")
	}
	origNested, _ := orig.Obj.Get("nested")
	w, _ := origNested.Obj.Get("w")
	if string(w.Num) != "10" {
		t.Errorf("original nested w = %q, want 10", w.Num)
	}
}
