package commands

import (
	"github.com/spf13/cobra"
)

var (
	pdfContest string
	pdfProblem string
	pdfForce   bool
)

func init() {
	pdfCmd.Flags().StringVarP(&pdfContest, "contest", "c", "", "contest id or name prefix")
	pdfCmd.Flags().StringVarP(&pdfProblem, "problem", "p", "", "problem id, code or name prefix")
	pdfCmd.Flags().BoolVarP(&pdfForce, "force", "f", false, "bypass the page cache")
	pdfCmd.MarkFlagRequired("contest")
	pdfCmd.MarkFlagRequired("problem")
	rootCmd.AddCommand(pdfCmd)
}

var pdfCmd = &cobra.Command{
	Use:   "pdf -c <contest> -p <problem>",
	Short: "Downloads the problem statement PDF into the working directory.",
	Run: func(cmd *cobra.Command, args []string) {
		_, err := app.PDF(cmd.Context(), pdfContest, pdfProblem, pdfForce)
		exit(err)
	},
}
