package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finlit/spellbook/internal/quiz"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Show question bank statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := quiz.Load()
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Questions: %d", bank.Len())
		if r := bank.Rejected(); r > 0 {
			fmt.Fprintf(out, "   (%d malformed records dropped)", r)
		}
		fmt.Fprintln(out)

		fmt.Fprintln(out, "\nBy tier:")
		byTier := bank.CountByDifficulty()
		for _, d := range quiz.AllDifficulties() {
			fmt.Fprintf(out, "  %-8s %d\n", d.Label(), byTier[d])
		}

		fmt.Fprintln(out, "\nBy type:")
		byType := bank.CountByType()
		for _, qt := range []quiz.QuestionType{quiz.MultipleChoice, quiz.TrueFalse, quiz.FillInTheBlank, quiz.Dropdown} {
			fmt.Fprintf(out, "  %-18s %d\n", qt, byType[qt])
		}

		fmt.Fprintln(out, "\nBy category:")
		byCategory := bank.CountByCategory()
		for _, c := range quiz.AllCategories() {
			fmt.Fprintf(out, "  %-18s %d\n", c, byCategory[c])
		}
		return nil
	},
}
