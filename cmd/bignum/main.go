package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sentra-lang/bignum"
)

func main() {
	os.Exit(run())
}

// run builds and executes the root command, returning a process exit
// code instead of calling os.Exit directly so testscript can invoke it
// in-process via testscript.RunMain.
func run() int {
	rootCmd := &cobra.Command{
		Use:   "bignum",
		Short: "Arbitrary-precision decimal integer arithmetic from the command line",
	}

	var human bool

	addCmd := &cobra.Command{
		Use:   "add [a] [b]",
		Short: "Print a + b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return binaryOp(cmd, args, human, bignum.Add)
		},
	}

	subCmd := &cobra.Command{
		Use:   "sub [a] [b]",
		Short: "Print a - b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return binaryOp(cmd, args, human, bignum.Sub)
		},
	}

	mulCmd := &cobra.Command{
		Use:   "mul [a] [b]",
		Short: "Print a * b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return binaryOp(cmd, args, human, bignum.Mul)
		},
	}

	divCmd := &cobra.Command{
		Use:   "div [a] [b]",
		Short: "Print a / b and a mod b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer recoverCorePanic(&err)
			a, b, err := parseTwo(args)
			if err != nil {
				return err
			}
			q, r := bignum.DivMod(a, b)
			printResult(cmd, q, human)
			fmt.Fprintf(cmd.OutOrStdout(), "remainder: %s\n", bignum.ToString(r))
			return nil
		},
	}

	var powExp int64
	powCmd := &cobra.Command{
		Use:   "pow [x]",
		Short: "Print x ^ exp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer recoverCorePanic(&err)
			x, err := bignum.Parse(args[0])
			if err != nil {
				return err
			}
			printResult(cmd, bignum.Pow(x, powExp), human)
			return nil
		},
	}
	powCmd.Flags().Int64Var(&powExp, "exp", 2, "nonnegative exponent")

	rootCmd.PersistentFlags().BoolVar(&human, "human", false, "render results with thousands separators (via go-humanize) when attached to a terminal")
	rootCmd.AddCommand(addCmd, subCmd, mulCmd, divCmd, powCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bignum:", err)
		return 1
	}
	return 0
}

// recoverCorePanic turns the panics DivMod and Pow raise for their
// documented precondition violations (division by zero, a negative
// exponent) into ordinary cobra errors instead of crashing the CLI.
func recoverCorePanic(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			*err = e
			return
		}
		*err = fmt.Errorf("%v", r)
	}
}

func parseTwo(args []string) (bignum.Integer, bignum.Integer, error) {
	a, err := bignum.Parse(args[0])
	if err != nil {
		return bignum.Zero, bignum.Zero, fmt.Errorf("parsing %q: %w", args[0], err)
	}
	b, err := bignum.Parse(args[1])
	if err != nil {
		return bignum.Zero, bignum.Zero, fmt.Errorf("parsing %q: %w", args[1], err)
	}
	return a, b, nil
}

func binaryOp(cmd *cobra.Command, args []string, human bool, op func(bignum.Integer, bignum.Integer) bignum.Integer) error {
	a, b, err := parseTwo(args)
	if err != nil {
		return err
	}
	printResult(cmd, op(a, b), human)
	return nil
}

// printResult writes z's decimal rendering, switching to a
// thousands-grouped rendering when --human is set and stdout is a
// terminal — piping to a file or another program always gets the
// plain digit string a downstream parser expects. humanize.Comma
// handles the common case where the result still fits an int64;
// groupThousands extends the same grouping to results arbitrarily
// larger than that, which is the entire reason this tool exists.
func printResult(cmd *cobra.Command, z bignum.Integer, human bool) {
	out := cmd.OutOrStdout()
	s := bignum.ToString(z)
	if human && isatty.IsTerminal(os.Stdout.Fd()) {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			fmt.Fprintln(out, humanize.Comma(v))
			return
		}
		fmt.Fprintln(out, groupThousands(s))
		return
	}
	fmt.Fprintln(out, s)
}

// groupThousands inserts comma grouping into a decimal string too
// large for humanize.Comma's int64 argument.
func groupThousands(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg, s = true, s[1:]
	}
	var grouped string
	for i, c := range reverse(s) {
		if i > 0 && i%3 == 0 {
			grouped = "," + grouped
		}
		grouped = string(c) + grouped
	}
	if neg {
		grouped = "-" + grouped
	}
	return grouped
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

