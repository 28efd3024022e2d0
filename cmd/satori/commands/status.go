package commands

import (
	"github.com/spf13/cobra"
)

var (
	statusContest string
	statusProblem string
	statusForce   bool
)

func init() {
	statusCmd.Flags().StringVarP(&statusContest, "contest", "c", "", "contest id or name prefix")
	statusCmd.Flags().StringVarP(&statusProblem, "problem", "p", "", "problem id, code or name prefix")
	statusCmd.Flags().BoolVarP(&statusForce, "force", "f", false, "bypass the page cache")
	statusCmd.MarkFlagRequired("contest")
	statusCmd.MarkFlagRequired("problem")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status -c <contest> -p <problem>",
	Short: "Shows the status of your latest submission to a problem.",
	Run: func(cmd *cobra.Command, args []string) {
		_, err := app.Status(cmd.Context(), statusContest, statusProblem, statusForce)
		exit(err)
	},
}
