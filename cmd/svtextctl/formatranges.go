package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hdltoolsmith/svtext/format"
	"github.com/hdltoolsmith/svtext/lexsim"
)

var formatRangesCmd = &cobra.Command{
	Use:   "format-ranges <file>",
	Short: "Print the byte ranges for which formatting is disabled",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contents, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		base := string(contents)

		tokens, err := lexsim.Lex(base)
		if err != nil {
			return err
		}

		engine := format.NewDisableEngine()
		engine.ScanComments(tokens, base, lexsim.IsComment, lexsim.CommentText)

		for _, r := range engine.Disabled().Ranges() {
			fmt.Printf("%s: [%d,%d) disabled\n", args[0], r.Lo, r.Hi)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatRangesCmd)
}
