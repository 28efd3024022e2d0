package commands

import (
	"github.com/spf13/cobra"
)

var (
	problemsContest string
	problemsForce   bool
)

func init() {
	problemsCmd.Flags().StringVarP(&problemsContest, "contest", "c", "", "contest id or name prefix")
	problemsCmd.Flags().BoolVarP(&problemsForce, "force", "f", false, "bypass the page cache")
	problemsCmd.MarkFlagRequired("contest")
	rootCmd.AddCommand(problemsCmd)
}

var problemsCmd = &cobra.Command{
	Use:   "problems -c <contest>",
	Short: "Lists the problems of a contest.",
	Run: func(cmd *cobra.Command, args []string) {
		_, err := app.Problems(cmd.Context(), problemsContest, problemsForce)
		exit(err)
	},
}
