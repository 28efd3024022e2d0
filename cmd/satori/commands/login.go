package commands

import (
	"github.com/mhorod/satori-cli/lib/satori"
	"github.com/mhorod/satori-cli/lib/satori/terminal"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Logs in and stores the session token.",
	Run: func(cmd *cobra.Command, args []string) {
		login, password, ok := terminal.NewPrompt().Credentials()
		if !ok {
			terminal.NewDisplay().Error(satori.ErrLoginFailed)
			exit(satori.ErrLoginFailed)
			return
		}
		_, err := app.Login(cmd.Context(), login, password)
		exit(err)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discards the stored session token.",
	Run: func(cmd *cobra.Command, args []string) {
		exit(app.Logout(cmd.Context()))
	},
}
