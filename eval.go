package calc

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Eval evaluates the expression. The only errors are undefined names and
// calls with the wrong number of arguments; numeric edge cases like division
// by zero follow IEEE 754, so the result may be an infinity or NaN.
func (e *Expr) Eval() (float64, error) {
	return e.n.eval()
}

func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeName:
		// A bare identifier is a constant. Function names require an
		// argument list.
		if v, ok := consts[n.name]; ok {
			return v, nil
		}
		return 0, &NameError{Name: n.name}
	case nodeCall:
		var args []float64
		for l := n.right; l != nil; l = l.right {
			v, err := l.left.eval()
			if err != nil {
				return 0, err
			}
			args = append(args, v)
		}
		if fn, ok := funcs[n.name]; ok {
			if !fn.CanCall(len(args)) {
				return 0, &CallError{Func: n.name, Len: len(args)}
			}
			return fn.Call(args), nil
		}
		if v, ok := consts[n.name]; ok {
			if len(args) != 0 {
				return 0, &CallError{Func: n.name, Len: len(args)}
			}
			return v, nil
		}
		return 0, &NameError{Name: n.name}
	case nodeNeg:
		v, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case nodeAdd:
		l, r, err := n.eval2()
		return l + r, err
	case nodeSub:
		l, r, err := n.eval2()
		return l - r, err
	case nodeMul:
		l, r, err := n.eval2()
		return l * r, err
	case nodeDiv:
		// Division by zero is ±Inf or NaN, not an error.
		l, r, err := n.eval2()
		return l / r, err
	case nodeRem:
		// Remainder takes the sign of the dividend.
		l, r, err := n.eval2()
		return math.Mod(l, r), err
	case nodePow:
		l, r, err := n.eval2()
		return math.Pow(l, r), err
	case nodeArg:
		panic("calc: eval on nodeArg")
	default:
		panic("calc: invalid AST node " + n.kind.String())
	}
}

// eval2 evaluates both operands of a binary node, left first.
func (n *node) eval2() (l, r float64, err error) {
	l, err = n.left.eval()
	if err != nil {
		return 0, 0, err
	}
	r, err = n.right.eval()
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}

// Eval is a shortcut to parse an expression and evaluate it.
func Eval(src io.RuneScanner) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}

// NameError is an error from a lookup of a name that is neither a function
// nor a constant.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined name: " + strconv.Quote(err.Name)
}

// CallError is an error indicating a call with a number of arguments the
// callee does not accept. Calling a constant with arguments, e.g. pi(1), is
// also a CallError.
type CallError struct {
	// Func is the name that was called.
	Func string
	// Len is the number of arguments the call supplied.
	Len int
}

func (err *CallError) Error() string {
	args := "arguments"
	if err.Len == 1 {
		args = "argument"
	}
	return "cannot call " + err.Func + " with " + strconv.Itoa(err.Len) + " " + args
}
