// Command calc evaluates arithmetic expressions.
//
// With arguments, each argument is parsed and evaluated as one expression:
//
//	calc "1 + 2 * (2 ^ 10)" "max(1, 5, 3)"
//
// With no arguments, calc reads expressions from standard input a line at a
// time, printing a "> " prompt when the input is a terminal. An empty line is
// skipped, a bad expression is reported and the loop continues, and "exit",
// "quit", or end of input ends the session.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/calclib/calc"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	app := &cli.App{
		Name:      "calc",
		Usage:     "evaluate arithmetic expressions",
		ArgsUsage: "[expression ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "fmt",
				Value: "%g",
				Usage: "result formatting verb",
			},
			&cli.BoolFlag{
				Name:  "echo",
				Usage: "print parse trees before results",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("calc failed")
	}
}

func run(c *cli.Context) error {
	if c.Bool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	verb := c.String("fmt")
	echo := c.Bool("echo")
	if c.NArg() > 0 {
		for _, arg := range c.Args().Slice() {
			if err := evalOne(c.App.Writer, arg, verb, echo); err != nil {
				return cli.Exit(err.Error(), 1)
			}
		}
		return nil
	}
	repl(os.Stdin, c.App.Writer, verb, echo, term.IsTerminal(int(os.Stdin.Fd())))
	return nil
}

// evalOne parses and evaluates a single expression and prints the result.
func evalOne(w io.Writer, src, verb string, echo bool) error {
	start := time.Now()
	e, err := calc.ParseString(src)
	if err != nil {
		return err
	}
	if echo {
		fmt.Fprintf(w, "%v : ", e)
	}
	r, err := e.Eval()
	if err != nil {
		return err
	}
	log.Debug().Str("expr", src).Dur("elapsed", time.Since(start)).Msg("evaluated")
	fmt.Fprintf(w, verb+"\n", r)
	return nil
}

// repl reads expressions a line at a time until EOF or an exit command. A bad
// expression is reported and the loop continues.
func repl(r io.Reader, w io.Writer, verb string, echo, prompt bool) {
	in := bufio.NewScanner(r)
	for {
		if prompt {
			fmt.Fprint(w, "> ")
		}
		if !in.Scan() {
			break
		}
		line := strings.TrimSpace(in.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return
		}
		if err := evalOne(w, line, verb, echo); err != nil {
			fmt.Fprintln(w, err)
		}
	}
	if err := in.Err(); err != nil {
		log.Error().Err(err).Msg("reading input")
	}
}
