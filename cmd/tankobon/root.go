package cmd

import (
	"fmt"
	"os"

	"github.com/rpaes/tankobon/pkg/app"
	"github.com/rpaes/tankobon/pkg/services"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tankobon",
	Short: "A manga storefront in your terminal",
	Long:  "Browse the catalog, manage your cart and your account with a TUI and CLI",
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		a, err := app.NewApp()
		if err != nil {
			cobra.CheckErr(err)
		}
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newCLIController builds the service wiring for one-shot commands, printing
// store notifications straight to stdout.
func newCLIController() *services.Controller {
	controller, err := services.NewController(func(title, message string) {
		fmt.Printf("%s %s\n", title, message)
	})
	if err != nil {
		cobra.CheckErr(err)
	}
	return controller
}

func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
