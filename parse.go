package calc

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Expression = Addition
// Addition = Multiplication { ('+' | '-') Multiplication }
// Multiplication = Unary { ('*' | '/' | '%' | '^') Unary }
// Unary = ['-'] Parentheses
// Parentheses = '(' Expression ')' | Atom
// Atom = number | Call
// Call = identifier ['(' Arguments ')']
// Arguments = [ Expression { ',' Expression } ]
//
// All binary operators are left-associative, and '^' shares the
// multiplication tier.

// Expr is a parsed expression that can be evaluated.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses an expression so it can be evaluated. The expression must
// cover the entire input; anything left over after a complete expression is
// a TrailingError.
func Parse(src io.RuneScanner) (*Expr, error) {
	scan := lex(src)
	n, err := parseExpr(scan)
	if err != nil {
		return nil, err
	}
	switch tok := scan.must(); tok.kind {
	case tokenEOF:
	case tokenClose:
		return nil, &BracketError{Col: tok.pos, Right: tok.text}
	case tokenSep:
		return nil, &SeparatorError{Col: tok.pos}
	default:
		return nil, &TrailingError{Col: tok.pos, Token: tok.text}
	}
	return &Expr{n: n}, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string) (*Expr, error) {
	return Parse(strings.NewReader(src))
}

// String creates a string representation of the parsed expression, with
// every term parenthesized.
func (e *Expr) String() string {
	return e.n.String()
}

// parseExpr parses a full subexpression. If there is no error, then parseExpr
// pushes the token that ended the subexpression, including EOF.
func parseExpr(scan *lexer) (*node, error) {
	return parseAdd(scan)
}

// parseAdd parses the addition tier: a chain of '+' and '-' on
// multiplications, grouped leftmost-first.
func parseAdd(scan *lexer) (*node, error) {
	n, err := parseMul(scan)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		var kind nodeKind
		switch {
		case tok.kind != tokenOp:
			scan.push(tok)
			return n, nil
		case tok.text == "+":
			kind = nodeAdd
		case tok.text == "-":
			kind = nodeSub
		default:
			scan.push(tok)
			return n, nil
		}
		rhs, err := parseMul(scan)
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

// parseMul parses the multiplication tier: a chain of '*', '/', '%', and '^'
// on unaries, grouped leftmost-first. '^' deliberately binds no tighter than
// '*': 2*3^2 is (2*3)^2 and 2^3^2 is (2^3)^2.
func parseMul(scan *lexer) (*node, error) {
	n, err := parseUnary(scan)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		var kind nodeKind
		switch {
		case tok.kind != tokenOp:
			scan.push(tok)
			return n, nil
		case tok.text == "*":
			kind = nodeMul
		case tok.text == "/":
			kind = nodeDiv
		case tok.text == "%":
			kind = nodeRem
		case tok.text == "^":
			kind = nodePow
		default:
			scan.push(tok)
			return n, nil
		}
		rhs, err := parseUnary(scan)
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

// parseUnary parses an optional leading '-' applied to the whole
// parenthesized or atomic expression that follows.
func parseUnary(scan *lexer) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenOp && tok.text == "-" {
		n, err := parseParen(scan)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNeg, left: n}, nil
	}
	scan.push(tok)
	return parseParen(scan)
}

// parseParen parses a parenthesized subexpression or an atom.
func parseParen(scan *lexer) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenOpen {
		scan.push(tok)
		return parseAtom(scan)
	}
	n, err := parseExpr(scan)
	if err != nil {
		return nil, err
	}
	if end := scan.must(); end.kind != tokenClose {
		return nil, unclosed(tok, end)
	}
	return n, nil
}

// parseAtom parses a numeric literal or a call. Any other token means a
// missing operand.
func parseAtom(scan *lexer) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil || math.IsInf(v, 0) {
			// The lexer guarantees the literal is well formed, but a long
			// enough digit string still overflows float64.
			return nil, &NumberError{Col: tok.pos, Text: tok.text}
		}
		return &node{kind: nodeNum, name: tok.text, val: v}, nil
	case tokenIdent:
		return parseCall(scan, tok)
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos}
	default:
		return nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
	}
}

// parseCall parses the optional argument list after an identifier. An
// identifier with no parenthesis is a bare name resolved at evaluation time.
func parseCall(scan *lexer, ident lexToken) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenOpen {
		scan.push(tok)
		return &node{kind: nodeName, name: ident.text}, nil
	}
	args, err := parseArgs(scan, tok)
	if err != nil {
		return nil, err
	}
	return &node{kind: nodeCall, name: ident.text, right: args}, nil
}

// parseArgs parses a parenthesized, comma-separated argument list, consuming
// the close parenthesis. The result is a chain of nodeArg, nil for an empty
// list. Arity is not checked here; the evaluator reports mismatches by name.
func parseArgs(scan *lexer, open lexToken) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenClose {
		return nil, nil
	}
	scan.push(tok)
	var n node
	l := &n
	for {
		rhs, err := parseExpr(scan)
		if err != nil {
			return nil, err
		}
		l.right = &node{kind: nodeArg, left: rhs}
		l = l.right
		end := scan.must()
		switch end.kind {
		case tokenClose:
			return n.right, nil
		case tokenSep:
			// Next argument.
		case tokenEOF:
			return nil, &BracketError{Col: end.pos, Left: open.text}
		default:
			return nil, &TrailingError{Col: end.pos, Token: end.text}
		}
	}
}

// unclosed returns an error appropriate for a subexpression that ended on
// anything other than its close parenthesis.
func unclosed(open, end lexToken) error {
	switch end.kind {
	case tokenEOF:
		return &BracketError{Col: end.pos, Left: open.text}
	case tokenSep:
		return &SeparatorError{Col: end.pos}
	default:
		return &TrailingError{Col: end.pos, Token: end.text}
	}
}
