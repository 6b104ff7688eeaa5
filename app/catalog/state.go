package catalog

import (
	"net/url"
	"strconv"

	"github.com/mytheresa/product-categories/models"
)

// Query parameter names carrying the view state.
const (
	ParamUser       = "user"
	ParamQuery      = "query"
	ParamCategory   = "category"
	ParamCategoryID = "categoryId"
)

// ViewState is the filter selection of the catalog page.
//
// SelectedCategoryTitle drives filtering while SelectedCategoryID only drives
// the highlighted category button. ResetAll leaves SelectedCategoryID as is.
type ViewState struct {
	SelectedUserID        *uint
	Query                 string
	SelectedCategoryTitle string
	SelectedCategoryID    *uint
}

func (s ViewState) SelectUser(id uint) ViewState {
	s.SelectedUserID = &id
	return s
}

func (s ViewState) SelectAllUsers() ViewState {
	s.SelectedUserID = nil
	return s
}

// SetQuery stores the raw input; it is not trimmed.
func (s ViewState) SetQuery(q string) ViewState {
	s.Query = q
	return s
}

func (s ViewState) ClearQuery() ViewState {
	s.Query = ""
	return s
}

func (s ViewState) SelectCategory(c models.Category) ViewState {
	id := c.ID
	s.SelectedCategoryTitle = c.Title
	s.SelectedCategoryID = &id
	return s
}

func (s ViewState) SelectAllCategories() ViewState {
	s.SelectedCategoryTitle = ""
	s.SelectedCategoryID = nil
	return s
}

func (s ViewState) ResetAll() ViewState {
	s.SelectedUserID = nil
	s.Query = ""
	s.SelectedCategoryTitle = ""
	return s
}

// ParseViewState reads the state from query parameters. Ids that do not
// parse as unsigned integers are ignored.
func ParseViewState(q url.Values) ViewState {
	var s ViewState

	if id, ok := parseID(q.Get(ParamUser)); ok {
		s.SelectedUserID = &id
	}
	s.Query = q.Get(ParamQuery)
	s.SelectedCategoryTitle = q.Get(ParamCategory)
	if id, ok := parseID(q.Get(ParamCategoryID)); ok {
		s.SelectedCategoryID = &id
	}
	return s
}

// Values encodes the state, omitting empty fields.
func (s ViewState) Values() url.Values {
	v := url.Values{}
	if s.SelectedUserID != nil {
		v.Set(ParamUser, strconv.FormatUint(uint64(*s.SelectedUserID), 10))
	}
	if s.Query != "" {
		v.Set(ParamQuery, s.Query)
	}
	if s.SelectedCategoryTitle != "" {
		v.Set(ParamCategory, s.SelectedCategoryTitle)
	}
	if s.SelectedCategoryID != nil {
		v.Set(ParamCategoryID, strconv.FormatUint(uint64(*s.SelectedCategoryID), 10))
	}
	return v
}

// Href returns base with the encoded state as its query string.
func (s ViewState) Href(base string) string {
	encoded := s.Values().Encode()
	if encoded == "" {
		return base
	}
	return base + "?" + encoded
}

func parseID(raw string) (uint, bool) {
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
