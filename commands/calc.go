// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands implements the calculator commands of the
// demonstration harness.
package commands

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/33cn/intitan/common/config"
	"github.com/33cn/intitan/integer"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var clog = log.New("module", "commands")

var cfg = config.Default()

// SetConfig installs the loaded configuration for all commands.
func SetConfig(c *config.Config) {
	if c != nil {
		cfg = c
	}
}

// termPattern matches one signed hex term; an expression is a chain of
// terms joined by + and -.
var termPattern = regexp.MustCompile(`[+-]?[0-9A-Fa-f]+`)

// Eval splits expr on + and - and folds the terms left to right. A term
// may carry its own sign ("-A+3"), and an explicit operator may precede a
// signed term ("5--5"). base must be 16.
func Eval(expr string, base int) (integer.Integer, error) {
	expr = strings.ReplaceAll(expr, " ", "")
	if expr == "" {
		return integer.Zero, errors.New("empty expression")
	}
	spans := termPattern.FindAllStringIndex(expr, -1)
	if len(spans) == 0 || spans[0][0] != 0 || spans[len(spans)-1][1] != len(expr) {
		return integer.Zero, errors.Errorf("malformed expression %q", expr)
	}
	sum := integer.Zero
	prev := 0
	for _, span := range spans {
		gap := expr[prev:span[0]]
		term := expr[span[0]:span[1]]
		prev = span[1]
		v, err := integer.FromString(term, base)
		if err != nil {
			return integer.Zero, errors.Wrapf(err, "term %q", term)
		}
		switch gap {
		case "", "+":
			sum = integer.Add(sum, v)
		case "-":
			sum = integer.Sub(sum, v)
		default:
			return integer.Zero, errors.Errorf("malformed expression %q", expr)
		}
	}
	return sum, nil
}

// EvalCmd evaluate one expression and exit
func EvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval expression",
		Short: "Evaluate a sum of signed hex terms, e.g. FF+1-A",
		Args:  cobra.ExactArgs(1),
		RunE:  runEval,
	}
	addEvalFlags(cmd)
	return cmd
}

func addEvalFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("base", "b", 0, "radix of the terms and the result (default from config)")
	cmd.Flags().BoolP("lower", "l", false, "render the result in lowercase")
}

func runEval(cmd *cobra.Command, args []string) error {
	base, _ := cmd.Flags().GetInt("base")
	if base == 0 {
		base = cfg.Base
	}
	lower, _ := cmd.Flags().GetBool("lower")
	res, err := Eval(args[0], base)
	if err != nil {
		clog.Error("eval", "expr", args[0], "err", err)
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), integer.ToHex(res, cfg.Uppercase && !lower))
	return nil
}

// CalcCmd interactive calculator loop
func CalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc",
		Short: "Interactive calculator: prompts for a radix, then sums expressions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runCalc(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	fmt.Fprintf(out, "%s. Enter radix:\n", cfg.Title)
	for sc.Scan() {
		radix, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err != nil || radix != 16 {
			fmt.Fprintln(out, "Only radix 16 is supported. Try again:")
			continue
		}
		break
	}
	fmt.Fprintln(out, "Enter an expression to evaluate (q to quit):")
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "q" {
			return nil
		}
		res, err := Eval(line, 16)
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}
		fmt.Fprintln(out, integer.ToHex(res, cfg.Uppercase))
	}
	return sc.Err()
}
