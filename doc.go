// Package calc implements a floating-point calculator.
//
// An expression is parsed with a fixed operator-precedence grammar: '+' and
// '-' bind loosest, then '*', '/', '%', and '^' together in one tier, then
// unary minus, then parentheses. Every tier groups left to right, including
// '^', so 2^3^2 is (2^3)^2.
//
// Identifiers name entries in a fixed registry of functions (abs, ceil,
// floor, round, sign, the trig family, ln, log, sqrt, max, min, clamp,
// clamp01) and constants (pi, e). Names are resolved during evaluation, so a
// misspelled function parses fine and fails when evaluated.
//
// Arithmetic is IEEE 754 float64 throughout: dividing by zero gives an
// infinity, sqrt of a negative gives NaN, and both propagate through further
// arithmetic instead of raising errors.
package calc
