package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mekedron/cafe-menu/internal/catalog"
	"github.com/mekedron/cafe-menu/internal/domain"
	"github.com/mekedron/cafe-menu/internal/i18n"
	"github.com/mekedron/cafe-menu/internal/service/menu"
	"github.com/mekedron/cafe-menu/internal/service/output"
)

type menuRow struct {
	ID            string       `json:"id" yaml:"id"`
	Name          string       `json:"name" yaml:"name"`
	Category      string       `json:"category" yaml:"category"`
	CategoryLabel string       `json:"category_label" yaml:"category_label"`
	Price         domain.Price `json:"price" yaml:"price"`
	PriceLabel    string       `json:"price_label" yaml:"price_label"`
	Image         string       `json:"image,omitempty" yaml:"image,omitempty"`
	Description   string       `json:"description,omitempty" yaml:"description,omitempty"`
}

type categoryRow struct {
	Category string `json:"category" yaml:"category"`
	Label    string `json:"label" yaml:"label"`
	Items    int    `json:"items" yaml:"items"`
}

func newMenuCommand(deps Dependencies) *cobra.Command {
	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Browse menu items, categories, and item details.",
	}
	menuCmd.AddCommand(newMenuListCommand(deps))
	menuCmd.AddCommand(newMenuCategoriesCommand(deps))
	menuCmd.AddCommand(newMenuItemCommand(deps))
	return menuCmd
}

func newMenuListCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var category string
	var query string
	var page int
	var pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List menu items filtered by category and name, one page at a time.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := newCommandContext(cmd.Context(), cmd, deps, flags)
			if err != nil {
				return err
			}
			if page < 1 {
				return emitError(cmd, deps, cc, "CAFE_INVALID_ARGUMENT", "--page must be >= 1")
			}
			if !cmd.Flags().Changed("page-size") && deps.Settings.PageSize > 0 {
				pageSize = deps.Settings.PageSize
			}
			if pageSize < 1 {
				return emitError(cmd, deps, cc, "CAFE_INVALID_ARGUMENT", "--page-size must be >= 1")
			}
			index, err := deps.Site.Index(cmd.Context())
			if err != nil {
				return emitDataError(cmd, deps, cc, err)
			}

			controller := menu.NewController(index, pageSize)
			controller.SetActive(category)
			controller.SetQuery(query)
			if shown := controller.GoTo(page); shown != page {
				cc.warnings = append(cc.warnings, fmt.Sprintf("page %d is out of range; showing page %d", page, shown))
			}
			view := controller.View()
			rows := menuRows(view.Items, cc.language, cc.translator)

			table := func() string {
				title := fmt.Sprintf(
					"%s · %s · %s",
					cc.translator.T("menu.title", "Menu"),
					i18n.LabelForCategory(cc.translator, view.Active),
					i18n.Interpolate(cc.translator.T("menu.page", "Page {page} of {pages}"), map[string]string{
						"page":  strconv.Itoa(view.Page),
						"pages": strconv.Itoa(view.PageCount),
					}),
				)
				if len(rows) == 0 {
					return title + "\n" + cc.translator.T("menu.empty", "No items match your filters.")
				}
				return output.RenderTable(title, []string{"ID", "Name", "Category", "Price"}, lo.Map(rows, func(row menuRow, _ int) []string {
					return []string{row.ID, row.Name, row.CategoryLabel, row.PriceLabel}
				}))
			}
			return render(cmd, deps, cc, table, map[string]any{
				"active":       view.Active,
				"active_label": i18n.LabelForCategory(cc.translator, view.Active),
				"query":        view.Query,
				"page":         view.Page,
				"page_count":   view.PageCount,
				"page_size":    view.PageSize,
				"total":        view.Total,
				"items":        rows,
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", catalog.AllCategories, "Category to show; \"All\" shows every item.")
	cmd.Flags().StringVar(&query, "query", "", "Case-insensitive name filter matched against every language.")
	cmd.Flags().IntVar(&page, "page", 1, "Page number (1-based).")
	cmd.Flags().IntVar(&pageSize, "page-size", menu.DefaultPageSize, "Items per page (defaults to CAFE_PAGE_SIZE).")
	addGlobalFlags(cmd, &flags)
	return cmd
}

func newMenuCategoriesCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var fileOrder bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List menu categories with localized labels and item counts.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := newCommandContext(cmd.Context(), cmd, deps, flags)
			if err != nil {
				return err
			}
			index, err := deps.Site.Index(cmd.Context())
			if err != nil {
				return emitDataError(cmd, deps, cc, err)
			}

			categories := index.DisplayCategories()
			if fileOrder {
				categories = index.Categories()
			}
			rows := categoryRows(index, categories, cc.translator)

			table := func() string {
				return output.RenderTable(
					cc.translator.T("menu.title", "Menu"),
					[]string{"Category", "Label", "Items"},
					lo.Map(rows, func(row categoryRow, _ int) []string {
						return []string{row.Category, row.Label, strconv.Itoa(row.Items)}
					}),
				)
			}
			return render(cmd, deps, cc, table, map[string]any{
				"categories": rows,
			})
		},
	}

	cmd.Flags().BoolVar(&fileOrder, "file-order", false, "Keep categories in catalog order instead of pinning signature and premium first.")
	addGlobalFlags(cmd, &flags)
	return cmd
}

func newMenuItemCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "item <id-or-slug>",
		Short: "Show one menu item by id or slug.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := newCommandContext(cmd.Context(), cmd, deps, flags)
			if err != nil {
				return err
			}
			index, err := deps.Site.Index(cmd.Context())
			if err != nil {
				return emitDataError(cmd, deps, cc, err)
			}
			key := strings.TrimSpace(args[0])
			item, ok := index.ByID(key)
			if !ok {
				return emitError(cmd, deps, cc, "CAFE_ITEM_NOT_FOUND", fmt.Sprintf("menu item %q not found", key))
			}
			row := toMenuRow(item, cc.language, cc.translator)

			table := func() string {
				rows := [][]string{
					{"ID", row.ID},
					{"Name", row.Name},
					{"Category", row.CategoryLabel},
					{"Price", row.PriceLabel},
				}
				if row.Description != "" {
					rows = append(rows, []string{"Description", row.Description})
				}
				if row.Image != "" {
					rows = append(rows, []string{"Image", row.Image})
				}
				return output.RenderTable(row.Name, nil, rows)
			}
			return render(cmd, deps, cc, table, row)
		},
	}

	addGlobalFlags(cmd, &flags)
	return cmd
}

func menuRows(items []domain.Item, lang string, t i18n.Translator) []menuRow {
	return lo.Map(items, func(item domain.Item, _ int) menuRow {
		return toMenuRow(item, lang, t)
	})
}

func toMenuRow(item domain.Item, lang string, t i18n.Translator) menuRow {
	return menuRow{
		ID:            item.Key(),
		Name:          item.DisplayName(lang),
		Category:      item.Category,
		CategoryLabel: i18n.LabelForCategory(t, item.Category),
		Price:         item.Price,
		PriceLabel:    item.Price.Format(),
		Image:         item.Image,
		Description:   item.DescriptionFor(lang),
	}
}

// categoryRows prepends the "All" pseudo-category.
func categoryRows(index *catalog.Index, categories []string, t i18n.Translator) []categoryRow {
	rows := make([]categoryRow, 0, len(categories)+1)
	rows = append(rows, categoryRow{
		Category: catalog.AllCategories,
		Label:    i18n.LabelForCategory(t, catalog.AllCategories),
		Items:    index.Len(),
	})
	for _, category := range categories {
		rows = append(rows, categoryRow{
			Category: category,
			Label:    i18n.LabelForCategory(t, category),
			Items:    len(index.Filter(category, "")),
		})
	}
	return rows
}
