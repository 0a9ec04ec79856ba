package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rpaes/tankobon/pkg/data"
	"github.com/spf13/cobra"
)

var browseCategory string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the manga catalog",
	Long:  "Fetch the storefront catalog and display it in a table",
	Run: func(cmd *cobra.Command, args []string) {
		controller := newCLIController()
		defer controller.Close()

		mangas, err := controller.Source.Catalog(cmd.Context())
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to load catalog: %w", err))
		}

		mangas = data.FilterByCategory(mangas, browseCategory)
		if len(mangas) == 0 {
			fmt.Println("Nenhum mangá encontrado.")
			return
		}

		var (
			purple = lipgloss.Color("99")

			headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(purple)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("ID", "Título", "Autor", "Gênero", "Preço")

		for _, manga := range mangas {
			price := fmt.Sprintf("R$ %.2f", manga.Price)
			if manga.OnSale() {
				price = fmt.Sprintf("R$ %.2f (de R$ %.2f)", manga.Price, *manga.OriginalPrice)
			}
			t.Row(
				manga.ID,
				truncateString(manga.Title, 40),
				truncateString(manga.Author, 24),
				manga.Genre,
				price,
			)
		}

		fmt.Println(t)
	},
}

func init() {
	browseCmd.Flags().StringVarP(&browseCategory, "category", "c", data.CategoryAll, "Filter by genre")

	rootCmd.AddCommand(browseCmd)
}
