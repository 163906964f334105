package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finlit/spellbook/internal/app"
	"github.com/finlit/spellbook/internal/quiz"
	"github.com/finlit/spellbook/internal/scoring"
	"github.com/finlit/spellbook/internal/topics"
)

var playCmd = &cobra.Command{
	Use:   "play [topic]",
	Short: "Start a quest, optionally jumping straight into a topic",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runApp(nil)
		}
		topic, err := topics.Parse(args[0])
		if err != nil {
			return err
		}
		return runApp(&topic)
	},
}

// runApp loads the question bank and scoring rules and starts the TUI.
func runApp(start *topics.Topic) error {
	bank, err := quiz.Load()
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}

	cfg, err := scoring.FromEnv()
	if err != nil {
		return fmt.Errorf("load scoring config: %w", err)
	}

	return app.Run(app.Options{
		Bank:       bank,
		Config:     cfg,
		StartTopic: start,
	})
}
