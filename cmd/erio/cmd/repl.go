package cmd

import (
	"os"

	"erio/repl"

	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive REPL",
	RunE: func(cmd *cobra.Command, args []string) error {
		repl.Start(os.Stdin, os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	rootCmd.RunE = replCmd.RunE
}
