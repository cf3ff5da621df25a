package calc

import (
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLex(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []lexToken
		errs   int
	}{
		{"empty", "", []lexToken{{kind: tokenEOF, pos: 1}}, 0},
		{"spaces", " \t\r\n ", []lexToken{{kind: tokenEOF, pos: 6}}, 0},
		{"zero", "0", []lexToken{{text: "0", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 2}}, 0},
		{"digits", "9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 11}}, 0},
		{"real", "12.5", []lexToken{{text: "12.5", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 5}}, 0},
		{"two", "1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3}, {kind: tokenEOF, pos: 4}}, 0},
		{"point-at-end", "1.", []lexToken{{pos: 1}, {kind: tokenEOF, pos: 3}}, 1},
		{"point-then-letter", "1.a", []lexToken{{pos: 1}, {text: "a", kind: tokenIdent, pos: 3}, {kind: tokenEOF, pos: 4}}, 1},
		{"second-point", "1.2.3", []lexToken{{text: "1.2", kind: tokenNum, pos: 1}, {pos: 4}, {text: "3", kind: tokenNum, pos: 5}, {kind: tokenEOF, pos: 6}}, 1},
		{"bare-point", ".5", []lexToken{{pos: 1}, {text: "5", kind: tokenNum, pos: 2}, {kind: tokenEOF, pos: 3}}, 1},
		{"ident", "foo", []lexToken{{text: "foo", kind: tokenIdent, pos: 1}, {kind: tokenEOF, pos: 4}}, 0},
		{"ident-digits", "a1", []lexToken{{text: "a1", kind: tokenIdent, pos: 1}, {kind: tokenEOF, pos: 3}}, 0},
		{"ident-case", "Pi", []lexToken{{text: "Pi", kind: tokenIdent, pos: 1}, {kind: tokenEOF, pos: 3}}, 0},
		{"ops", "+-*/%^", []lexToken{
			{text: "+", kind: tokenOp, pos: 1},
			{text: "-", kind: tokenOp, pos: 2},
			{text: "*", kind: tokenOp, pos: 3},
			{text: "/", kind: tokenOp, pos: 4},
			{text: "%", kind: tokenOp, pos: 5},
			{text: "^", kind: tokenOp, pos: 6},
			{kind: tokenEOF, pos: 7},
		}, 0},
		{"parens", "(1)", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: "1", kind: tokenNum, pos: 2}, {text: ")", kind: tokenClose, pos: 3}, {kind: tokenEOF, pos: 4}}, 0},
		{"comma", ",", []lexToken{{text: ",", kind: tokenSep, pos: 1}, {kind: tokenEOF, pos: 2}}, 0},
		{"call", "max(1, 5)", []lexToken{
			{text: "max", kind: tokenIdent, pos: 1},
			{text: "(", kind: tokenOpen, pos: 4},
			{text: "1", kind: tokenNum, pos: 5},
			{text: ",", kind: tokenSep, pos: 6},
			{text: "5", kind: tokenNum, pos: 8},
			{text: ")", kind: tokenClose, pos: 9},
			{kind: tokenEOF, pos: 10},
		}, 0},
		{"unknown", "$", []lexToken{{pos: 1}, {kind: tokenEOF, pos: 2}}, 1},
		{"unknown-mid", "1 $ 2", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {pos: 3}, {text: "2", kind: tokenNum, pos: 5}, {kind: tokenEOF, pos: 6}}, 1},
		{"unknown-unicode", "π", []lexToken{{pos: 1}, {kind: tokenEOF, pos: 2}}, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			scan := lex(strings.NewReader(c.src))
			var got []lexToken
			errs := 0
			for {
				tok, err := scan.next()
				if err == io.EOF {
					break
				}
				if err != nil {
					errs++
				}
				got = append(got, tok)
			}
			require.Equal(t, c.errs, errs, "wrong error count scanning %q", c.src)
			if diff := cmp.Diff(c.tokens, got, cmp.AllowUnexported(lexToken{})); diff != "" {
				t.Errorf("wrong tokens scanning %q (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestLexError(t *testing.T) {
	cases := []struct {
		name string
		src  string
		char rune
		col  int
	}{
		{"first", "$", '$', 1},
		{"after-ident", "ab@", '@', 3},
		{"point-at-end", "1.", '.', 2},
		{"point-then-letter", "3.x", '.', 2},
		{"after-space", "1 # 2", '#', 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			scan := lex(strings.NewReader(c.src))
			var lerr *LexError
			for {
				_, err := scan.next()
				if err == io.EOF {
					break
				}
				if err != nil {
					require.ErrorAs(t, err, &lerr)
					break
				}
			}
			require.NotNil(t, lerr, "no lex error scanning %q", c.src)
			require.Equal(t, c.char, lerr.Char)
			require.Equal(t, c.col, lerr.Col)
			require.Equal(t, c.col, lerr.Pos())
		})
	}
}

func TestLexPushback(t *testing.T) {
	scan := lex(strings.NewReader("1+2"))
	tok, err := scan.next()
	require.NoError(t, err)
	scan.push(tok)
	got, err := scan.next()
	require.NoError(t, err)
	require.Equal(t, tok, got)
	require.Panics(t, func() { scan.must() })
	scan.push(got)
	require.Panics(t, func() { scan.push(got) })
}
