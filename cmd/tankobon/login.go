package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Sign in to your account",
	Long:  "Exchange your credentials for a session; the token is kept locally until logout",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		controller := newCLIController()
		defer controller.Close()

		if err := controller.Auth.Login(cmd.Context(), args[0], loginPassword); err != nil {
			cobra.CheckErr(err)
		}

		user := controller.Auth.User()
		fmt.Printf("✅ Bem-vindo, %s!\n", user.Name)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored session",
	Run: func(cmd *cobra.Command, args []string) {
		controller := newCLIController()
		defer controller.Close()

		controller.Auth.Logout()
		fmt.Println("Sessão encerrada.")
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password")
	loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
