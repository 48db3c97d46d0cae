package cmd

import (
	"fmt"
	"io"
	"os"

	"erio/interp"

	"github.com/spf13/cobra"
)

// stdoutSink adapts os.Stdout to interp's output sink interface.
type stdoutSink struct{}

func (stdoutSink) WriteString(s string) (int, error) { return fmt.Fprint(os.Stdout, s) }

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run an Erio script",
	Long: `Execute an Erio program read from a file, standard input, or an
inline expression.

Examples:
  erio run program.erio
  erio run -e 'print("hello")'
  cat program.erio | erio run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline source instead of reading a file")
}

func runScript(cmd *cobra.Command, args []string) error {
	src, err := readSource(args)
	if err != nil {
		return err
	}

	if err := interp.Run(src, stdoutSink{}); err != nil {
		return fmt.Errorf("%s", err)
	}
	return nil
}

func readSource(args []string) (string, error) {
	if evalExpr != "" {
		return evalExpr, nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}

	if info, err := os.Stdin.Stat(); err == nil && (info.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("provide a file path, -e, or pipe source on stdin")
}
