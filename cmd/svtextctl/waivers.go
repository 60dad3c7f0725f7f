package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/hdltoolsmith/svtext/lexsim"
	"github.com/hdltoolsmith/svtext/text"
	"github.com/hdltoolsmith/svtext/waiver"
)

var waiverRule string

var waiversCmd = &cobra.Command{
	Use:   "waivers <file>",
	Short: "Report which lines in a file are waived for a rule",
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

		if debugTree {
			tree, perr := lexsim.Parse(tokens, base)
			if perr != nil {
				return perr
			}
			repr.Println(tree)
		}

		cfg, err := loadWaiverConfig()
		if err != nil {
			return err
		}

		lines := text.NewLineColumnMap(base)
		store := waiver.Build(lines.NumLines(), cfg.Trigger, func(line int) waiver.Line {
			lo, hi := lineByteRange(lines, line)
			begin, end := tokens.RangeSpanningOffsets(lo, hi)
			return waiver.ClassifyLine(tokens[begin:end], base, lexsim.IsWhitespace, lexsim.IsComment, lexsim.CommentText)
		})

		if waiverRule == "" {
			return fmt.Errorf("svtextctl: --rule is required")
		}
		for line := 0; line < lines.NumLines(); line++ {
			if store.RuleIsWaivedOnLine(waiverRule, line) {
				fmt.Printf("%s:%d: waived\n", args[0], line+1)
			}
		}
		return nil
	},
}

func lineByteRange(lines *text.LineColumnMap, line int) (lo, hi int) {
	lo = lines.OffsetAtLine(line)
	if line+1 < lines.NumLines() {
		hi = lines.OffsetAtLine(line + 1)
	} else {
		hi = lo + len(lines.LineText(line))
	}
	return lo, hi
}

func init() {
	waiversCmd.Flags().StringVarP(&waiverRule, "rule", "r", "", "rule name to report waived lines for")
	rootCmd.AddCommand(waiversCmd)
}
