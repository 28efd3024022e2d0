package commands

import (
	"github.com/spf13/cobra"
)

var (
	submitContest string
	submitProblem string
	submitFile    string
)

func init() {
	submitCmd.Flags().StringVarP(&submitContest, "contest", "c", "", "contest id or name prefix")
	submitCmd.Flags().StringVarP(&submitProblem, "problem", "p", "", "problem id, code or name prefix")
	submitCmd.Flags().StringVarP(&submitFile, "file", "f", "", "path to the solution file")
	submitCmd.MarkFlagRequired("contest")
	submitCmd.MarkFlagRequired("problem")
	submitCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(submitCmd)
}

var submitCmd = &cobra.Command{
	Use:   "submit -c <contest> -p <problem> -f <file>",
	Short: "Submits a solution file to a problem.",
	Run: func(cmd *cobra.Command, args []string) {
		exit(app.Submit(cmd.Context(), submitContest, submitProblem, submitFile))
	},
}
