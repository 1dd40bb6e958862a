package shunting_test

import (
	"errors"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/zephyrtronium/shunting"
)

func TestIsNumber(t *testing.T) {
	cases := []struct {
		s    string
		want bool
	}{
		{"3", true},
		{"3.0", true},
		{"3.", true},
		{".5", true},
		{"+3", true},
		{"-2.25", true},
		{"0009", true},
		{"", false},
		{"+", false},
		{"-", false},
		{".", false},
		{"+.", false},
		{"3,0", false},
		{"1+2.0", false},
		{"1.1.1", false},
		{"1e5", false},
		{"inf", false},
		{"NaN", false},
		{" 3", false},
		{"--3", false},
	}
	for _, c := range cases {
		if got := shunting.IsNumber(c.s); got != c.want {
			t.Errorf("IsNumber(%q): want %t, got %t", c.s, c.want, got)
		}
	}
}

func TestIsNumberFormatted(t *testing.T) {
	vals := []float64{0, 1, -1, 0.1, 1e300, -1e-300, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Pi}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		vals = append(vals, math.Float64frombits(rng.Uint64()))
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !shunting.IsNumber(s) {
			t.Errorf("IsNumber(%q) is false", s)
		}
	}
}

func TestLookup(t *testing.T) {
	cases := []struct {
		sym   string
		prec  int
		assoc shunting.Assoc
	}{
		{"^", 3, shunting.Right},
		{"*", 2, shunting.Left},
		{"/", 2, shunting.Left},
		{"+", 1, shunting.Left},
		{"-", 1, shunting.Left},
	}
	for _, c := range cases {
		op, ok := shunting.Lookup(c.sym)
		if !ok {
			t.Errorf("no operator %q", c.sym)
			continue
		}
		if op.Symbol != c.sym || op.Prec != c.prec || op.Assoc != c.assoc {
			t.Errorf("wrong operator for %q: %+v", c.sym, op)
		}
	}
	for _, sym := range []string{"", "(", ")", ",", "%", "**", "×"} {
		if op, ok := shunting.Lookup(sym); ok {
			t.Errorf("unexpected operator for %q: %+v", sym, op)
		}
	}
}

func TestApply(t *testing.T) {
	cases := []struct {
		op   string
		x, y float64
		want float64
	}{
		{"+", 1, 2, 3},
		{"-", 2, 1, 1},
		{"*", 3, 4, 12},
		{"/", 3, 2, 1.5},
		{"^", 2, 3, 8},
		{"^", 4, 0.5, 2},
		{"^", 2, -1, 0.5},
		{"^", 0, 0, 1},
	}
	for _, c := range cases {
		got, err := shunting.Apply(c.op, c.x, c.y)
		if err != nil {
			t.Errorf("%g %s %g: unexpected error %v", c.x, c.op, c.y, err)
			continue
		}
		if got != c.want {
			t.Errorf("%g %s %g: want %g, got %g", c.x, c.op, c.y, c.want, got)
		}
	}
}

func TestApplyNaN(t *testing.T) {
	got, err := shunting.Apply("^", -8, 1.0/3)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("want NaN, got %g", got)
	}
}

func TestApplyErrors(t *testing.T) {
	var dz *shunting.DivisionByZeroError
	if _, err := shunting.Apply("/", 1, 0); !errors.As(err, &dz) {
		t.Errorf("1/0: wrong error %v", err)
	}
	if _, err := shunting.Apply("/", 1, math.Copysign(0, -1)); !errors.As(err, &dz) {
		t.Errorf("1/-0: wrong error %v", err)
	}
	var oe *shunting.OperatorError
	if _, err := shunting.Apply("", 0, 0); !errors.As(err, &oe) {
		t.Errorf("empty operator: wrong error %v", err)
	} else if oe.Operator != "" {
		t.Errorf("empty operator: wrong operator %q", oe.Operator)
	}
	if _, err := shunting.Apply("%", 5, 3); !errors.As(err, &oe) {
		t.Errorf("%%: wrong error %v", err)
	}
}

func TestAssocString(t *testing.T) {
	if s := shunting.Left.String(); s != "left" {
		t.Errorf("Left is %q", s)
	}
	if s := shunting.Right.String(); s != "right" {
		t.Errorf("Right is %q", s)
	}
	if s := shunting.Assoc(7).String(); s != "Assoc(7)" {
		t.Errorf("Assoc(7) is %q", s)
	}
}
