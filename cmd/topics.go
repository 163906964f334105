package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finlit/spellbook/internal/quiz"
	"github.com/finlit/spellbook/internal/topics"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the quest topics and their categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := quiz.Load()
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}

		byCategory := bank.CountByCategory()
		for _, t := range topics.All() {
			cats := topics.Categories(t)
			names := make([]string, len(cats))
			total := 0
			for i, c := range cats {
				names[i] = string(c)
				total += byCategory[c]
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s %3d questions   (%s)\n",
				topics.Label(t), total, strings.Join(names, ", "))
		}
		return nil
	},
}
