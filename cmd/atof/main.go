// Command atof parses decimal literals given as arguments (or read
// from stdin, one per line, if no arguments are given) and prints the
// binary64 bit pattern each one converts to.
package main

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/db47h/atof"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		multiZero   bool
		underscores bool
		comma       bool
		rejectSpec  bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "atof [operand...]",
		Short: "Parse decimal literals to IEEE 754 binary64 bit patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			var opt atof.Option
			if multiZero {
				opt |= atof.AllowMultipleLeadingZeroes
			}
			if underscores {
				opt |= atof.AllowUnderscores
			}
			if comma {
				opt |= atof.DecimalSeparatorIsComma
			}
			if rejectSpec {
				opt |= atof.RejectInfAndNaN
			}

			operands := args
			if len(operands) == 0 {
				operands, err = readStdinLines()
				if err != nil {
					return err
				}
			}

			failed := false
			for _, in := range operands {
				r := atof.Parse([]byte(in), opt)
				if r.Status != atof.OK {
					logger.Warnw("parse failed", "input", in, "error", r.Err())
					failed = true
					continue
				}
				fmt.Printf("%s => 0x%016X\n", in, math.Float64bits(r.Value))
			}
			if failed {
				return fmt.Errorf("one or more operands failed to parse")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&multiZero, "allow-multiple-leading-zeroes", false, "permit inputs like \"00\" or \"0644\"")
	cmd.Flags().BoolVar(&underscores, "allow-underscores", false, "permit '_' as a digit-group separator")
	cmd.Flags().BoolVar(&comma, "decimal-comma", false, "use ',' instead of '.' as the decimal separator")
	cmd.Flags().BoolVar(&rejectSpec, "reject-inf-nan", false, "reject inf/nan literals and finite overflow to infinity")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func readStdinLines() ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
