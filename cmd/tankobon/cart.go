package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show your cart",
	Long:  "Display the cart's line items with the running count and total",
	Run: func(cmd *cobra.Command, args []string) {
		controller := newCLIController()
		defer controller.Close()

		items := controller.Cart.Items()
		if len(items) == 0 {
			fmt.Println("🛒 Seu carrinho está vazio. Use 'tankobon browse' para ver o catálogo.")
			return
		}

		columns := []table.Column{
			{Title: "ID", Width: 10},
			{Title: "Título", Width: 40},
			{Title: "Qtd", Width: 5},
			{Title: "Preço", Width: 12},
			{Title: "Subtotal", Width: 12},
		}

		rows := []table.Row{}
		for _, item := range items {
			rows = append(rows, table.Row{
				item.Manga.ID,
				truncateString(item.Manga.Title, 38),
				fmt.Sprintf("%d", item.Quantity),
				fmt.Sprintf("R$ %.2f", item.Manga.Price),
				fmt.Sprintf("R$ %.2f", item.Manga.Price*float64(item.Quantity)),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n🛒 Carrinho (%d itens)\n\n", controller.Cart.Count())
		fmt.Println(t.View())
		fmt.Printf("Total: R$ %.2f\n", controller.Cart.Total())
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add [manga-id]",
	Short: "Add a manga to the cart",
	Long:  "Look the id up in the catalog and add one copy to the cart",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		controller := newCLIController()
		defer controller.Close()

		mangas, err := controller.Source.Catalog(cmd.Context())
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to load catalog: %w", err))
		}

		for _, manga := range mangas {
			if manga.ID == args[0] {
				controller.Cart.AddToCart(manga)
				return
			}
		}
		cobra.CheckErr(fmt.Errorf("manga %q not found in catalog", args[0]))
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove [manga-id]",
	Short: "Remove a line item from the cart",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		controller := newCLIController()
		defer controller.Close()

		controller.Cart.RemoveItem(args[0])
		fmt.Println("Item removido.")
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Run: func(cmd *cobra.Command, args []string) {
		controller := newCLIController()
		defer controller.Close()

		controller.Cart.ClearCart()
		fmt.Println("Carrinho esvaziado.")
	},
}

func init() {
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartClearCmd)

	rootCmd.AddCommand(cartCmd)
}
