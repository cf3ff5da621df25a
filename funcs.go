package calc

import "math"

// Func is a pure function from reals to reals. Arguments outside a function's
// domain produce NaN per IEEE 754 rather than an error.
type Func interface {
	// Call evaluates the function. invoc has a length for which CanCall
	// returned true.
	Call(invoc []float64) float64

	// CanCall returns whether the function can be called with n arguments.
	CanCall(n int) bool
}

// funcs is the function registry. It is never modified after initialization.
var funcs = map[string]Func{
	"abs":   monadic{math.Abs},
	"ceil":  monadic{math.Ceil},
	"floor": monadic{math.Floor},
	"round": monadic{math.Round},
	"sign":  monadic{sign},

	"sin":  monadic{math.Sin},
	"cos":  monadic{math.Cos},
	"tan":  monadic{math.Tan},
	"asin": monadic{math.Asin},
	"acos": monadic{math.Acos},
	"atan": monadic{math.Atan},

	"ln":   monadic{math.Log},
	"log":  logarithm{},
	"sqrt": monadic{math.Sqrt},

	"max": variadic{math.Max},
	"min": variadic{math.Min},

	"clamp":   triadic{clamp},
	"clamp01": monadic{func(x float64) float64 { return clamp(x, 0, 1) }},
}

// consts is the constant registry. It is never modified after initialization.
var consts = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// monadic is a Func of exactly one argument.
type monadic struct {
	f func(float64) float64
}

func (m monadic) Call(invoc []float64) float64 {
	return m.f(invoc[0])
}

func (m monadic) CanCall(n int) bool {
	return n == 1
}

// triadic is a Func of exactly three arguments.
type triadic struct {
	f func(a, b, c float64) float64
}

func (t triadic) Call(invoc []float64) float64 {
	return t.f(invoc[0], invoc[1], invoc[2])
}

func (t triadic) CanCall(n int) bool {
	return n == 3
}

// variadic is a Func of one or more arguments evaluated by a pairwise fold,
// left to right.
type variadic struct {
	f func(a, b float64) float64
}

func (v variadic) Call(invoc []float64) float64 {
	r := invoc[0]
	for _, x := range invoc[1:] {
		r = v.f(r, x)
	}
	return r
}

func (v variadic) CanCall(n int) bool {
	return n >= 1
}

// logarithm is the log function: log(x) is the base 10 logarithm of x, and
// log(x, b) is the base b logarithm of x.
type logarithm struct{}

func (logarithm) Call(invoc []float64) float64 {
	if len(invoc) == 1 {
		return math.Log10(invoc[0])
	}
	return math.Log(invoc[0]) / math.Log(invoc[1])
}

func (logarithm) CanCall(n int) bool {
	return n == 1 || n == 2
}

// sign returns 1 for positive x and -1 for negative x. Zeroes and NaN are
// returned unchanged.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return x
}

// clamp bounds x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}
