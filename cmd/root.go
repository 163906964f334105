package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "spellbook",
	Short: "Personal finance quiz game",
	Long:  "Spellbook Savings — a terminal quiz game that teaches personal finance one spell at a time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}
