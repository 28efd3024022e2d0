package commands

import (
	"github.com/spf13/cobra"
)

var (
	resultsContest string
	resultsProblem string
	resultsLimit   int
	resultsForce   bool
)

func init() {
	resultsCmd.Flags().StringVarP(&resultsContest, "contest", "c", "", "contest id or name prefix")
	resultsCmd.Flags().StringVarP(&resultsProblem, "problem", "p", "", "problem id, code or name prefix")
	resultsCmd.Flags().IntVarP(&resultsLimit, "limit", "l", 10, "maximum number of results")
	resultsCmd.Flags().BoolVarP(&resultsForce, "force", "f", false, "bypass the page cache")
	resultsCmd.MarkFlagRequired("contest")
	rootCmd.AddCommand(resultsCmd)
}

var resultsCmd = &cobra.Command{
	Use:   "results -c <contest> [-p <problem>] [-l <limit>]",
	Short: "Lists your recent submission results in a contest.",
	Run: func(cmd *cobra.Command, args []string) {
		_, err := app.Results(cmd.Context(), resultsContest, resultsProblem, resultsLimit, resultsForce)
		exit(err)
	},
}
