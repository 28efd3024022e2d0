package commands

import (
	"github.com/spf13/cobra"
)

var (
	contestsArchived bool
	contestsForce    bool
)

func init() {
	contestsCmd.Flags().BoolVarP(&contestsArchived, "archived", "a", false, "include archived contests")
	contestsCmd.Flags().BoolVarP(&contestsForce, "force", "f", false, "bypass the page cache")
	rootCmd.AddCommand(contestsCmd)
}

var contestsCmd = &cobra.Command{
	Use:   "contests",
	Short: "Lists the contests you have joined.",
	Run: func(cmd *cobra.Command, args []string) {
		_, err := app.Contests(cmd.Context(), contestsArchived, contestsForce)
		exit(err)
	},
}
