package menu

import (
	"strings"

	"github.com/mekedron/cafe-menu/internal/catalog"
	"github.com/mekedron/cafe-menu/internal/domain"
)

// DefaultPageSize is used when a controller is created with a non-positive size.
const DefaultPageSize = 12

// Querier answers category/text queries over a catalog.
type Querier interface {
	Filter(active string, query string) []domain.Item
}

// View is a snapshot of the visible menu page.
type View struct {
	Active    string        `json:"active" yaml:"active"`
	Query     string        `json:"query" yaml:"query"`
	Page      int           `json:"page" yaml:"page"`
	PageCount int           `json:"page_count" yaml:"page_count"`
	PageSize  int           `json:"page_size" yaml:"page_size"`
	Total     int           `json:"total" yaml:"total"`
	Items     []domain.Item `json:"items" yaml:"items"`
}

// Controller owns the filter and pagination state of the menu page.
// It is not safe for concurrent use.
type Controller struct {
	catalog  Querier
	active   string
	query    string
	page     int
	pageSize int
	filtered []domain.Item
}

// NewController starts on the first page of every category with no query.
func NewController(q Querier, pageSize int) *Controller {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	c := &Controller{
		catalog:  q,
		active:   catalog.AllCategories,
		page:     1,
		pageSize: pageSize,
	}
	c.refresh()
	return c
}

// SetActive selects a category and returns to the first page.
func (c *Controller) SetActive(active string) {
	if strings.TrimSpace(active) == "" {
		active = catalog.AllCategories
	}
	c.active = active
	c.refresh()
}

// SetQuery changes the search text and returns to the first page.
func (c *Controller) SetQuery(query string) {
	c.query = query
	c.refresh()
}

// GoTo moves to page, clamped into [1, PageCount].
func (c *Controller) GoTo(page int) int {
	c.page = clampPage(page, c.PageCount())
	return c.page
}

// Next moves one page forward if possible.
func (c *Controller) Next() int {
	return c.GoTo(c.page + 1)
}

// Prev moves one page back if possible.
func (c *Controller) Prev() int {
	return c.GoTo(c.page - 1)
}

// Active returns the selected category.
func (c *Controller) Active() string {
	return c.active
}

// Query returns the current search text.
func (c *Controller) Query() string {
	return c.query
}

// Page returns the current 1-based page.
func (c *Controller) Page() int {
	return c.page
}

// PageSize returns the fixed page size.
func (c *Controller) PageSize() int {
	return c.pageSize
}

// Total returns the number of items matching the current filters.
func (c *Controller) Total() int {
	return len(c.filtered)
}

// PageCount is at least 1, even when nothing matches.
func (c *Controller) PageCount() int {
	return pageCount(len(c.filtered), c.pageSize)
}

// Visible returns the items of the current page.
func (c *Controller) Visible() []domain.Item {
	start, end := pageBounds(len(c.filtered), c.pageSize, c.page)
	return append([]domain.Item(nil), c.filtered[start:end]...)
}

// View returns a snapshot of the current state.
func (c *Controller) View() View {
	items := c.Visible()
	if items == nil {
		items = []domain.Item{}
	}
	return View{
		Active:    c.active,
		Query:     c.query,
		Page:      c.page,
		PageCount: c.PageCount(),
		PageSize:  c.pageSize,
		Total:     len(c.filtered),
		Items:     items,
	}
}

func (c *Controller) refresh() {
	if c.catalog == nil {
		c.filtered = nil
	} else {
		c.filtered = c.catalog.Filter(c.active, c.query)
	}
	c.page = 1
}

func pageCount(total int, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

func clampPage(page int, count int) int {
	if page < 1 {
		return 1
	}
	if page > count {
		return count
	}
	return page
}

func pageBounds(total int, pageSize int, page int) (int, int) {
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	if start < 0 {
		start = 0
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return start, end
}
