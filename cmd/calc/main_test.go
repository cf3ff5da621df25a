package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplEvaluates(t *testing.T) {
	in := strings.NewReader("1+2\n2 ^ 3 ^ 2\n")
	var out bytes.Buffer
	repl(in, &out, "%g", false, false)
	require.Equal(t, "3\n64\n", out.String())
}

func TestReplContinuesAfterErrors(t *testing.T) {
	in := strings.NewReader("foo\n(1 + 2\n1+1\n")
	var out bytes.Buffer
	repl(in, &out, "%g", false, false)
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "undefined")
	require.Contains(t, lines[1], "paren")
	require.Equal(t, "2", lines[2])
}

func TestReplExit(t *testing.T) {
	for _, cmd := range []string{"exit", "quit"} {
		in := strings.NewReader("1+1\n" + cmd + "\n3+3\n")
		var out bytes.Buffer
		repl(in, &out, "%g", false, false)
		require.Equal(t, "2\n", out.String(), "%s did not end the session", cmd)
	}
}

func TestReplSkipsBlankLines(t *testing.T) {
	in := strings.NewReader("\n   \n5*5\n")
	var out bytes.Buffer
	repl(in, &out, "%g", false, false)
	require.Equal(t, "25\n", out.String())
}

func TestReplPrompt(t *testing.T) {
	in := strings.NewReader("1+1\n")
	var out bytes.Buffer
	repl(in, &out, "%g", false, true)
	require.Equal(t, "> 2\n> ", out.String())
}

func TestEvalOneFormat(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, evalOne(&out, "1/3", "%.2f", false))
	require.Equal(t, "0.33\n", out.String())
}

func TestEvalOneEcho(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, evalOne(&out, "1+2", "%g", true))
	require.Equal(t, "((1) + (2)) : 3\n", out.String())
}

func TestEvalOneError(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, evalOne(&out, "1 2", "%g", false))
	require.Empty(t, out.String())
}
