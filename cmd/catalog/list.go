package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mytheresa/product-categories/app/catalog"
	"github.com/mytheresa/product-categories/config"
	"github.com/mytheresa/product-categories/logger"
	"github.com/mytheresa/product-categories/models"
	"github.com/spf13/cobra"
)

var (
	listUser     uint
	listQuery    string
	listCategory string
)

// listCmd prints the filtered catalog
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the filtered catalog as a table",
	Long: `Print the products that survive the owner, search and category filters.

Examples:
  catalog list --user 2
  catalog list --query cap --category Clothes`,
	RunE: runList,
}

func init() {
	listCmd.Flags().UintVar(&listUser, "user", 0, "only products owned by this user id")
	listCmd.Flags().StringVar(&listQuery, "query", "", "case-insensitive product name search")
	listCmd.Flags().StringVar(&listCategory, "category", "", "exact category title")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	idStyle     = cellStyle.Bold(true)
	maleStyle   = cellStyle.Foreground(lipgloss.Color("12"))
	otherStyle  = cellStyle.Foreground(lipgloss.Color("9"))
)

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn", Out: cmd.ErrOrStderr()})

	c, err := loadCatalog(cfg, log)
	if err != nil {
		return err
	}

	state := catalog.ViewState{}.SetQuery(listQuery)
	if cmd.Flags().Changed("user") {
		state = state.SelectUser(listUser)
	}
	if listCategory != "" {
		state = state.SelectCategory(categoryByTitle(c, listCategory))
	}

	page := catalog.BuildPage(c, state, "/")
	return renderTable(cmd.OutOrStdout(), page.Rows)
}

// categoryByTitle resolves the button the user would have clicked. An unknown
// title still filters, and simply matches nothing.
func categoryByTitle(c *catalog.Catalog, title string) models.Category {
	for _, cat := range c.Categories() {
		if cat.Title == title {
			return cat
		}
	}
	return models.Category{Title: title}
}

func renderTable(w io.Writer, rows []catalog.Row) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, catalog.NoMatchingMessage)
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Product", "Category", "User").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return idStyle
			case col == 3 && rows[row].UserClass == catalog.ClassUserMale:
				return maleStyle
			case col == 3:
				return otherStyle
			default:
				return cellStyle
			}
		})
	for _, r := range rows {
		t.Row(fmt.Sprint(r.ID), r.Name, r.CategoryText, r.UserName)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
