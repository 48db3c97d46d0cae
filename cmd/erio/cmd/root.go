package cmd

import (
	"github.com/spf13/cobra"
)

// Version is overridden at build time via -ldflags.
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:     "erio",
	Short:   "Erio language interpreter",
	Long:    "erio is a tree-walking interpreter for the Erio language: a small, dynamically-typed imperative language with if/while control flow, first-class functions, and mutable sequences.",
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
