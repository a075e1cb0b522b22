package twine

import (
	"testing"
)

// Test_FromString tests empty-string normalization.
func Test_FromString(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantNullary bool
		wantUnary   bool
	}{
		{"empty normalizes to Empty", "", true, false},
		{"non-empty is Unary", "foo", false, true},
		{"single byte", "x", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := FromString(tt.in)
			if tw.IsNullary() != tt.wantNullary {
				t.Errorf("IsNullary()=%v want %v", tw.IsNullary(), tt.wantNullary)
			}
			if tw.IsUnary() != tt.wantUnary {
				t.Errorf("IsUnary()=%v want %v", tw.IsUnary(), tt.wantUnary)
			}
			if tw.IsNull() {
				t.Error("FromString must never produce Null")
			}
		})
	}
}

// Test_FromPair tests eager empty absorption.
func Test_FromPair(t *testing.T) {
	tests := []struct {
		name       string
		a, b       string
		wantRender string
		check      func(*Twine) bool
		checkName  string
	}{
		{"both empty", "", "", "", (*Twine).IsNullary, "IsNullary"},
		{"left empty", "", "foo", "foo", (*Twine).IsUnary, "IsUnary"},
		{"right empty", "foo", "", "foo", (*Twine).IsUnary, "IsUnary"},
		{"both set", "foo", "bar", "foobar", (*Twine).IsBinary, "IsBinary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := FromPair(tt.a, tt.b)
			if !tt.check(&tw) {
				t.Errorf("%s()=false, want true", tt.checkName)
			}
			if got := tw.String(); got != tt.wantRender {
				t.Errorf("String()=%q want %q", got, tt.wantRender)
			}
		})
	}
}

// Test_Concat_NullAbsorbs tests that Null wins from either side, including
// over Empty.
func Test_Concat_NullAbsorbs(t *testing.T) {
	null := Null()
	others := map[string]Twine{
		"null":   Null(),
		"empty":  Empty(),
		"string": FromString("foo"),
		"pair":   FromPair("foo", "bar"),
	}

	for name, x := range others {
		t.Run(name, func(t *testing.T) {
			left := Concat(&null, &x)
			right := Concat(&x, &null)
			if !left.IsNull() || !right.IsNull() {
				t.Errorf("concat with null: IsNull left=%v right=%v, want true/true",
					left.IsNull(), right.IsNull())
			}
			if left.String() != "" || right.String() != "" {
				t.Error("null result must render to empty string")
			}
		})
	}
}

// Test_Concat_EmptyIdentity tests that Empty vanishes from either side.
func Test_Concat_EmptyIdentity(t *testing.T) {
	empty := Empty()
	v := uint64(123)
	others := map[string]Twine{
		"string": FromString("foo"),
		"pair":   FromPair("foo", "bar"),
		"dec":    DecU64(&v),
		"empty":  Empty(),
	}

	for name, x := range others {
		t.Run(name, func(t *testing.T) {
			want := x.String()
			left := Concat(&empty, &x)
			right := Concat(&x, &empty)
			if got := left.String(); got != want {
				t.Errorf("concat(empty, x)=%q want %q", got, want)
			}
			if got := right.String(); got != want {
				t.Errorf("concat(x, empty)=%q want %q", got, want)
			}
		})
	}
}

// Test_Concat_Shapes tests the four-way shape split.
func Test_Concat_Shapes(t *testing.T) {
	t.Run("two unary collapse into binary", func(t *testing.T) {
		a := FromString("a")
		b := FromString("b")
		r := Concat(&a, &b)
		if !r.IsBinary() {
			t.Error("unary+unary should produce Binary directly")
		}
		if got := r.String(); got != "ab" {
			t.Errorf("String()=%q want %q", got, "ab")
		}
	})

	t.Run("binary side nests", func(t *testing.T) {
		ab := FromPair("a", "b")
		c := FromString("c")
		r := Concat(&ab, &c)
		if !r.IsBinary() {
			t.Error("binary+unary should produce Binary")
		}
		if got := r.String(); got != "abc" {
			t.Errorf("String()=%q want %q", got, "abc")
		}
	})
}

// Test_Concat_Order tests that render order survives the shape
// transformations of concatenation.
func Test_Concat_Order(t *testing.T) {
	a := FromString("a")
	b := FromString("b")
	c := FromString("c")

	ab := Concat(&a, &b)
	abc := Concat(&ab, &c)
	if got := abc.String(); got != "abc" {
		t.Errorf("((a+b)+c)=%q want %q", got, "abc")
	}

	bc := Concat(&b, &c)
	abc2 := Concat(&a, &bc)
	if got := abc2.String(); got != "abc" {
		t.Errorf("(a+(b+c))=%q want %q", got, "abc")
	}

	d := FromString("d")
	all := Concat(&abc, &d)
	if got := all.String(); got != "abcd" {
		t.Errorf("(((a+b)+c)+d)=%q want %q", got, "abcd")
	}
}

// Test_Concat_Method tests that the method form matches the package-level
// function.
func Test_Concat_Method(t *testing.T) {
	a := FromString("foo")
	b := FromString("bar")
	viaMethod := a.Concat(&b)
	viaFunc := Concat(&a, &b)
	if viaMethod.String() != viaFunc.String() {
		t.Errorf("method %q != func %q", viaMethod.String(), viaFunc.String())
	}
	// Operands stay usable and unchanged.
	if a.String() != "foo" || b.String() != "bar" {
		t.Error("Concat must not mutate its operands")
	}
}

// Test_Flatten tests the one-level collapse of nested unary wrappers.
func Test_Flatten(t *testing.T) {
	a := FromString("a")
	b := FromString("b")

	wa := FromTwine(&a)
	wb := FromTwine(&b)

	// One wrapper level: both sides flatten to Unary, so the result
	// collapses to a flat Binary over the string leaves.
	r := Concat(&wa, &wb)
	if !r.IsBinary() {
		t.Error("wrapped unary sides should flatten and collapse to Binary")
	}
	if got := r.String(); got != "ab" {
		t.Errorf("String()=%q want %q", got, "ab")
	}

	// Two wrapper levels: flatten collapses exactly one, the result nests.
	wwa := FromTwine(&wa)
	r2 := Concat(&wwa, &b)
	if got := r2.String(); got != "ab" {
		t.Errorf("doubly wrapped render %q want %q", got, "ab")
	}

	// Flattening a wrapped Empty still applies the identity rule.
	e := Empty()
	we := FromTwine(&e)
	r3 := Concat(&we, &b)
	if got := r3.String(); got != "b" {
		t.Errorf("wrapped empty should vanish, got %q", got)
	}

	// Flattening a wrapped Null still absorbs.
	n := Null()
	wn := FromTwine(&n)
	r4 := Concat(&b, &wn)
	if !r4.IsNull() {
		t.Error("wrapped null should absorb")
	}
}

// Test_Predicates tests that the arity predicates partition the shapes.
func Test_Predicates(t *testing.T) {
	v := uint64(7)
	tests := []struct {
		name    string
		tw      Twine
		nullary bool
		unary   bool
		binary  bool
	}{
		{"null", Null(), true, false, false},
		{"empty", Empty(), true, false, false},
		{"unary string", FromString("x"), false, true, false},
		{"unary dec", DecU64(&v), false, true, false},
		{"binary", FromPair("a", "b"), false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tw.IsNullary(); got != tt.nullary {
				t.Errorf("IsNullary()=%v want %v", got, tt.nullary)
			}
			if got := tt.tw.IsUnary(); got != tt.unary {
				t.Errorf("IsUnary()=%v want %v", got, tt.unary)
			}
			if got := tt.tw.IsBinary(); got != tt.binary {
				t.Errorf("IsBinary()=%v want %v", got, tt.binary)
			}
			if tt.tw.IsTriviallyEmpty() != tt.tw.IsNullary() {
				t.Error("IsTriviallyEmpty must alias IsNullary")
			}
		})
	}
}

// Test_AsSingleString tests the narrow string accessor.
func Test_AsSingleString(t *testing.T) {
	v := uint64(42)
	r := 'x'
	foo := FromString("foo")

	tests := []struct {
		name   string
		tw     Twine
		want   string
		wantOK bool
	}{
		{"empty yields empty string", Empty(), "", true},
		{"unary string", FromString("foo"), "foo", true},
		{"null", Null(), "", false},
		{"dec leaf", DecU64(&v), "", false},
		{"rune leaf", FromRune(&r), "", false},
		{"binary", FromPair("a", "b"), "", false},
		{"nested leaf", FromTwine(&foo), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.tw.AsSingleString()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("AsSingleString()=%q,%v want %q,%v", got, ok, tt.want, tt.wantOK)
			}
			if tt.tw.IsSingleString() != tt.wantOK {
				t.Errorf("IsSingleString()=%v want %v", tt.tw.IsSingleString(), tt.wantOK)
			}
		})
	}
}

// Test_EstimatedCapacity tests the lower-bound capacity heuristic.
func Test_EstimatedCapacity(t *testing.T) {
	big := uint64(18446744073709551615)
	neg := int64(-123456)
	emoji := '\U0001F389'

	tests := []struct {
		name string
		tw   Twine
		want int
	}{
		{"null", Null(), 0},
		{"empty", Empty(), 0},
		{"string", FromString("foo"), 3},
		{"pair", FromPair("foo", "bar"), 6},
		{"dec is constant 1", DecU64(&big), 1},
		{"signed dec is constant 1", DecI64(&neg), 1},
		{"hex is constant 1", HexU64(&big), 1},
		{"rune exact utf8 len", FromRune(&emoji), 4},
		{"prerendered arg exact", FromArg(Prerendered("hello")), 5},
		{"deferred arg constant 1", FromArg(Formatf("%d-%d", 10, 20)), 1},
		{"utf16 half input len", FromUTF16LE([]byte{'a', 0, 'b', 0}), 2},
		{"latin1 input len", FromLatin1([]byte{0xE9, 0xE9}), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tw.EstimatedCapacity(); got != tt.want {
				t.Errorf("EstimatedCapacity()=%d want %d", got, tt.want)
			}
		})
	}
}

// Test_EstimatedCapacity_Nested tests recursion through nested leaves.
func Test_EstimatedCapacity_Nested(t *testing.T) {
	foo := FromString("foo")
	bar := FromString("bar")
	baz := FromString("baz")

	fb := Concat(&foo, &bar)
	all := Concat(&fb, &baz)
	if got := all.EstimatedCapacity(); got != 9 {
		t.Errorf("EstimatedCapacity()=%d want 9", got)
	}

	v := uint64(99999)
	num := DecU64(&v)
	withNum := Concat(&all, &num)
	// 9 string bytes plus the constant 1 for the number.
	if got := withNum.EstimatedCapacity(); got != 10 {
		t.Errorf("EstimatedCapacity()=%d want 10", got)
	}
}
