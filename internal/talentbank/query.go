package talentbank

import (
	"fmt"
	"strings"

	"talent-bank/internal/apperr"
	"talent-bank/internal/storage"
)

const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

// Strategy selects where pagination happens. Callers pick one explicitly;
// the two are never combined for a single query.
type Strategy int

const (
	// ServerPaged lets the database filter, count and slice the directory.
	ServerPaged Strategy = iota
	// InMemory loads the whole directory and pages it in process.
	InMemory
)

func (s Strategy) String() string {
	switch s {
	case ServerPaged:
		return "server"
	case InMemory:
		return "memory"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps the query-string form onto a Strategy. Empty means ServerPaged.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "server":
		return ServerPaged, nil
	case "memory":
		return InMemory, nil
	default:
		return 0, &apperr.ValidationError{Field: "mode", Reason: "must be server or memory"}
	}
}

type Query struct {
	Search  string
	Page    int
	PerPage int
}

// WithSearch returns a copy of q filtered by search. Changing the filter
// starts again from the first page.
func (q Query) WithSearch(search string) Query {
	q.Search = search
	q.Page = 1
	return q
}

func (q Query) normalize() Query {
	q.Search = strings.TrimSpace(q.Search)
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPerPage
	}
	if q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}
	return q
}

func (q Query) offset() int {
	return (q.Page - 1) * q.PerPage
}

type Page struct {
	Entries  []*storage.Candidate `json:"entries"`
	Total    int                  `json:"total"`
	Page     int                  `json:"page"`
	PerPage  int                  `json:"perPage"`
	LastPage int                  `json:"lastPage"`
}

func lastPage(total, perPage int) int {
	if total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

// Matches reports whether c contains search, case-insensitively, in its
// name, email or any skill. An empty search matches everyone.
func Matches(c *storage.Candidate, search string) bool {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.Name), needle) || strings.Contains(strings.ToLower(c.Email), needle) {
		return true
	}
	for _, skill := range c.Skills {
		if strings.Contains(strings.ToLower(skill), needle) {
			return true
		}
	}
	return false
}

// PaginateInMemory filters and slices an already loaded directory. all is
// expected in directory order and is not modified.
func PaginateInMemory(all []*storage.Candidate, q Query) Page {
	q = q.normalize()

	filtered := make([]*storage.Candidate, 0, len(all))
	for _, c := range all {
		if Matches(c, q.Search) {
			filtered = append(filtered, c)
		}
	}

	entries := []*storage.Candidate{}
	if start := q.offset(); start < len(filtered) {
		end := min(start+q.PerPage, len(filtered))
		entries = append(entries, filtered[start:end]...)
	}

	return Page{
		Entries:  entries,
		Total:    len(filtered),
		Page:     q.Page,
		PerPage:  q.PerPage,
		LastPage: lastPage(len(filtered), q.PerPage),
	}
}
