package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hdltoolsmith/svtext/diff"
)

var diffContext int

var diffCmd = &cobra.Command{
	Use:   "diff <before> <after>",
	Short: "Print a unified diff between two files",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		before, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		after, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		out := diff.UnifiedDiffText(string(before), string(after), args[0], args[1], diffContext)
		fmt.Print(out)
		return nil
	},
}

func init() {
	diffCmd.Flags().IntVarP(&diffContext, "context", "C", 3, "number of context lines around each hunk")
	rootCmd.AddCommand(diffCmd)
}
