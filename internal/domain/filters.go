package domain

import "fmt"

// FilterType selects which tasks are shown based on completion state.
type FilterType string

const (
	FilterAll       FilterType = "all"
	FilterActive    FilterType = "active"
	FilterCompleted FilterType = "completed"
)

// SortType selects the ordering of the displayed task list.
type SortType string

const (
	SortManual    SortType = "manual"
	SortDateDesc  SortType = "date_desc"
	SortDateAsc   SortType = "date_asc"
	SortTitleAsc  SortType = "title_asc"
	SortTitleDesc SortType = "title_desc"
)

// FilterState holds the transient view state: which tasks to show and in
// what order. It is never persisted.
type FilterState struct {
	Filter         FilterType
	Sort           SortType
	SearchQuery    string
	CategoryFilter string // empty means no category filter
}

// DefaultFilterState returns the initial view state.
func DefaultFilterState() FilterState {
	return FilterState{
		Filter: FilterAll,
		Sort:   SortDateDesc,
	}
}

// ParseFilterType validates a filter name from user input.
func ParseFilterType(s string) (FilterType, error) {
	switch FilterType(s) {
	case FilterAll, FilterActive, FilterCompleted:
		return FilterType(s), nil
	}
	return "", fmt.Errorf("%w: %q (expected all, active, or completed)", ErrInvalidFilter, s)
}

// ParseSortType validates a sort name from user input.
func ParseSortType(s string) (SortType, error) {
	switch SortType(s) {
	case SortManual, SortDateDesc, SortDateAsc, SortTitleAsc, SortTitleDesc:
		return SortType(s), nil
	}
	return "", fmt.Errorf("%w: %q (expected manual, date_desc, date_asc, title_asc, or title_desc)", ErrInvalidSort, s)
}
