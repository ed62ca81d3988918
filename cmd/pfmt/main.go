package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bjaus/pfmt"
)

var noNewline bool

var rootCmd = &cobra.Command{
	Use:   "pfmt TEMPLATE [ARG...]",
	Short: "Render a printf-style template",
	Long: `pfmt renders a printf-family template with the given arguments.

Arguments are typed by shape: true/false become booleans, decimal and
0x-prefixed literals become integers, single-quoted runes become
characters, everything else stays a string.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		vals := make([]any, len(args)-1)
		for i, raw := range args[1:] {
			vals[i] = typedArg(raw)
		}
		if err := pfmt.Fprintf(cmd.OutOrStdout(), args[0], vals...); err != nil {
			return err
		}
		if !noNewline {
			_, err := fmt.Fprintln(cmd.OutOrStdout())
			return err
		}
		return nil
	},
}

func typedArg(raw string) any {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	if rest, ok := strings.CutPrefix(raw, "0x"); ok {
		if u, err := strconv.ParseUint(rest, 16, 64); err == nil {
			return u
		}
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if len(raw) >= 3 && raw[0] == '\'' && raw[len(raw)-1] == '\'' {
		if r := []rune(raw[1 : len(raw)-1]); len(r) == 1 {
			return r[0]
		}
	}
	return raw
}

func init() {
	rootCmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, "do not append a trailing newline")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "pfmt: %v\n", err)
		os.Exit(1)
	}
}
