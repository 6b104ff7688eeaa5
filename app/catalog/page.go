package catalog

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/mytheresa/product-categories/models"
)

// NoMatchingMessage is shown instead of the table when no product survives
// the filters.
const NoMatchingMessage = "No products matching selected criteria"

// Text rendered for the icon and title of a product without a category.
const missingField = "undefined"

// CSS classes of the user cell.
const (
	ClassUserMale  = "has-text-link"
	ClassUserOther = "has-text-danger"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/catalog.html"))

// Link is a filter-bar entry. Href encodes the state after clicking it.
type Link struct {
	Label  string
	Href   string
	Active bool
}

type HiddenField struct {
	Name  string
	Value string
}

// Row is one product line of the table.
type Row struct {
	ID           uint
	Name         string
	CategoryText string
	UserName     string
	UserClass    string
}

type SortColumn struct {
	Label string
	Icon  string
}

// Page is the view model of the catalog page.
type Page struct {
	BasePath string

	AllUsers Link
	Users    []Link

	Query        string
	ClearHref    string
	SearchHidden []HiddenField

	// AllCategoriesOutlined is set while a category filter is active.
	AllCategoriesOutlined bool
	AllCategories         Link
	Categories            []Link

	ResetHref string

	Columns []SortColumn
	Rows    []Row
}

// Empty reports whether the no-match message replaces the table.
func (p Page) Empty() bool {
	return len(p.Rows) == 0
}

func (p Page) NoMatchingMessage() string {
	return NoMatchingMessage
}

// Source supplies the joined products and the filter-bar entries.
type Source interface {
	Users() []models.User
	Categories() []models.Category
	Products() []models.Product
}

// BuildPage derives the full view model from the catalog and the current state.
func BuildPage(c Source, s ViewState, basePath string) Page {
	p := Page{
		BasePath: basePath,
		AllUsers: Link{
			Label:  "All",
			Href:   s.SelectAllUsers().Href(basePath),
			Active: s.SelectedUserID == nil,
		},
		Query:                 s.Query,
		AllCategoriesOutlined: s.SelectedCategoryTitle != "",
		AllCategories: Link{
			Label: "All",
			Href:  s.SelectAllCategories().Href(basePath),
		},
		ResetHref: s.ResetAll().Href(basePath),
		Columns: []SortColumn{
			{Label: "ID", Icon: "fa-sort"},
			{Label: "Product", Icon: "fa-sort-down"},
			{Label: "Category", Icon: "fa-sort-up"},
			{Label: "User", Icon: "fa-sort"},
		},
	}

	for _, u := range c.Users() {
		p.Users = append(p.Users, Link{
			Label:  u.Name,
			Href:   s.SelectUser(u.ID).Href(basePath),
			Active: s.SelectedUserID != nil && *s.SelectedUserID == u.ID,
		})
	}

	if s.Query != "" {
		p.ClearHref = s.ClearQuery().Href(basePath)
	}
	p.SearchHidden = hiddenFields(s)

	for _, cat := range c.Categories() {
		active := s.SelectedCategoryID != nil && *s.SelectedCategoryID == cat.ID && s.SelectedCategoryTitle != ""
		p.Categories = append(p.Categories, Link{
			Label:  cat.Title,
			Href:   s.SelectCategory(cat).Href(basePath),
			Active: active,
		})
	}

	for _, prod := range VisibleProducts(c.Products(), s) {
		p.Rows = append(p.Rows, NewRow(prod))
	}
	return p
}

// NewRow renders one joined product as table cells.
func NewRow(p models.Product) Row {
	return Row{
		ID:           p.ID,
		Name:         p.Name,
		CategoryText: CategoryText(p.Category),
		UserName:     UserName(p.User),
		UserClass:    UserClass(p.User),
	}
}

// CategoryText formats a category as "<icon> - <title>"; a missing category
// prints "undefined" for both parts.
func CategoryText(c *models.Category) string {
	if c == nil {
		return fmt.Sprintf("%s - %s", missingField, missingField)
	}
	return fmt.Sprintf("%s - %s", c.Icon, c.Title)
}

func UserName(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.Name
}

func UserClass(u *models.User) string {
	if u != nil && u.Sex == models.SexMale {
		return ClassUserMale
	}
	return ClassUserOther
}

// RenderPage writes the HTML page.
func RenderPage(w io.Writer, p Page) error {
	return pageTemplate.Execute(w, p)
}

// hiddenFields carries the rest of the state through the search form.
func hiddenFields(s ViewState) []HiddenField {
	var fields []HiddenField
	if s.SelectedUserID != nil {
		fields = append(fields, HiddenField{Name: ParamUser, Value: strconv.FormatUint(uint64(*s.SelectedUserID), 10)})
	}
	if s.SelectedCategoryTitle != "" {
		fields = append(fields, HiddenField{Name: ParamCategory, Value: s.SelectedCategoryTitle})
	}
	if s.SelectedCategoryID != nil {
		fields = append(fields, HiddenField{Name: ParamCategoryID, Value: strconv.FormatUint(uint64(*s.SelectedCategoryID), 10)})
	}
	return fields
}
