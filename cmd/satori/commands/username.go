package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(usernameCmd)
}

var usernameCmd = &cobra.Command{
	Use:   "username",
	Short: "Prints the name of the currently logged in user.",
	Run: func(cmd *cobra.Command, args []string) {
		_, err := app.Username(cmd.Context())
		exit(err)
	},
}
