package commands

import (
	"github.com/spf13/cobra"
)

var (
	detailsContest    string
	detailsSubmission string
	detailsForce      bool
)

func init() {
	detailsCmd.Flags().StringVarP(&detailsContest, "contest", "c", "", "contest id or name prefix")
	detailsCmd.Flags().StringVarP(&detailsSubmission, "submission", "s", "", "submission id")
	detailsCmd.Flags().BoolVarP(&detailsForce, "force", "f", false, "bypass the page cache")
	detailsCmd.MarkFlagRequired("contest")
	detailsCmd.MarkFlagRequired("submission")
	rootCmd.AddCommand(detailsCmd)
}

var detailsCmd = &cobra.Command{
	Use:   "details -c <contest> -s <submission>",
	Short: "Shows the per-test breakdown of a submission.",
	Run: func(cmd *cobra.Command, args []string) {
		_, err := app.Details(cmd.Context(), detailsContest, detailsSubmission, detailsForce)
		exit(err)
	},
}
