package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/fix"
)

var evalStrict bool

var evalCmd = &cobra.Command{
	Use:   "eval OP ARG [ARG]",
	Short: "Apply one fixed-point operation",
	Long: `Converts the decimal arguments with FromFloat, applies OP and prints
the result with its raw 16.16 value and the fault code.

Binary operations: add, sub, mul, div, hypot, atan2 (y x)
Unary operations:  sqrt, cos, sin, tan, acos, asin, atan, ceil, int

Examples:
  fixtool eval mul 3.5 2
  fixtool eval sin 64
  fixtool eval div 1 0 --strict`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().BoolVar(&evalStrict, "strict", false,
		"exit with an error when the operation faults")
}

// operation is a fix function normalized to two operands.
type operation struct {
	arity int
	fn    func(a, b fix.Fixed) (fix.Fixed, error)
}

func unary(fn func(fix.Fixed) (fix.Fixed, error)) operation {
	return operation{arity: 1, fn: func(a, _ fix.Fixed) (fix.Fixed, error) { return fn(a) }}
}

func total(fn func(fix.Fixed) fix.Fixed) operation {
	return operation{arity: 1, fn: func(a, _ fix.Fixed) (fix.Fixed, error) { return fn(a), nil }}
}

var operations = map[string]operation{
	"add":   {arity: 2, fn: fix.Add},
	"sub":   {arity: 2, fn: fix.Sub},
	"mul":   {arity: 2, fn: fix.Mul},
	"div":   {arity: 2, fn: fix.Div},
	"hypot": {arity: 2, fn: fix.Hypot},
	"atan2": {arity: 2, fn: fix.Atan2},
	"sqrt":  unary(fix.Sqrt),
	"acos":  unary(fix.Acos),
	"asin":  unary(fix.Asin),
	"atan":  unary(fix.Atan),
	"cos":   total(fix.Cos),
	"sin":   total(fix.Sin),
	"tan":   total(fix.Tan),
	"ceil": unary(func(a fix.Fixed) (fix.Fixed, error) {
		n, err := fix.Ceil(a)
		return fix.FromInt(n), err
	}),
	"int": total(func(a fix.Fixed) fix.Fixed {
		return fix.FromInt(fix.ToInt(a))
	}),
}

func operationNames() string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// evaluate converts args and applies op, recording every fault
// (conversion included) on sig. The returned error is a usage error only.
func evaluate(sig *fix.Signal, op string, args []string) (fix.Fixed, error) {
	o, ok := operations[op]
	if !ok {
		return 0, fmt.Errorf("unknown operation %q (want one of %s)", op, operationNames())
	}
	if len(args) != o.arity {
		return 0, fmt.Errorf("%s takes %d argument(s), got %d", op, o.arity, len(args))
	}

	var operands [2]fix.Fixed
	for i, s := range args {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("argument %d: %w", i+1, err)
		}
		operands[i] = sig.Check(fix.FromFloat(x))
	}
	return sig.Check(o.fn(operands[0], operands[1])), nil
}

func printResult(w io.Writer, r fix.Fixed, code fix.Code) {
	fmt.Fprintf(w, "result: %s (0x%08X)\n", r, uint32(r))
	fmt.Fprintf(w, "errno:  %s\n", code.String())
}

func runEval(cmd *cobra.Command, args []string) error {
	sig := fix.NewSignal()
	r, err := evaluate(sig, args[0], args[1:])
	if err != nil {
		printError("eval", err)
		return err
	}

	printResult(os.Stdout, r, sig.Code())

	if evalStrict && sig.Err() != nil {
		return fmt.Errorf("%s: %w", args[0], sig.Err())
	}
	return nil
}
