// Package query models the filter/sort options a user can combine when
// requesting a collection from the remote service.
//
// The "all" choice exists only on this side of the wire: it is a tagged
// Filter variant rather than a magic string, so the omit-from-query rule
// is checked by the compiler instead of by convention.
package query

import "net/url"

const (
	SortByDate   TransactionSort = "date"
	SortByAmount TransactionSort = "amount"
)

const (
	SortByName   GoalSort = "name"
	SortByTarget GoalSort = "targetAmount"
	SortBySaved  GoalSort = "savedAmount"
)

// Sentinel is the UI-facing spelling of the unfiltered choice. It never
// appears in an encoded query.
const Sentinel = "all"

type (
	TransactionSort string

	GoalSort string

	// Filter is either the local-only "all" sentinel (zero value) or a
	// specific enumerated value forwarded verbatim to the service.
	Filter struct {
		value string
	}
)

// All returns the unfiltered sentinel.
func All() Filter { return Filter{} }

// Only returns a filter for a specific value. The sentinel spelling and
// the empty string normalize back to All.
func Only(value string) Filter {
	if value == "" || value == Sentinel {
		return All()
	}
	return Filter{value: value}
}

// IsAll reports whether the filter is the local sentinel.
func (f Filter) IsAll() bool { return f.value == "" }

// Value returns the specific filter value; empty for the sentinel.
func (f Filter) Value() string { return f.value }

// String renders the filter for display, spelling the sentinel out.
func (f Filter) String() string {
	if f.IsAll() {
		return Sentinel
	}
	return f.value
}

func (s TransactionSort) IsValid() bool {
	switch s {
	case SortByDate, SortByAmount:
		return true
	default:
		return false
	}
}

func (s GoalSort) IsValid() bool {
	switch s {
	case SortByName, SortByTarget, SortBySaved:
		return true
	default:
		return false
	}
}

// TransactionQuery selects and orders the transaction collection.
type TransactionQuery struct {
	Type Filter
	Sort TransactionSort
}

// Encode renders the query for the wire. Sort always carries a value so
// the server has a deterministic order; the type dimension is omitted
// entirely when unfiltered.
func (q TransactionQuery) Encode() url.Values {
	sort := q.Sort
	if !sort.IsValid() {
		sort = SortByDate
	}
	v := url.Values{}
	v.Set("sort", string(sort))
	if !q.Type.IsAll() {
		v.Set("type", q.Type.Value())
	}
	return v
}

// GoalQuery selects and orders the goal collection. Search is free text
// and is sent even when empty; Category follows the sentinel rule.
type GoalQuery struct {
	Search   string
	Category Filter
	Sort     GoalSort
}

func (q GoalQuery) Encode() url.Values {
	sort := q.Sort
	if !sort.IsValid() {
		sort = SortByName
	}
	v := url.Values{}
	v.Set("search", q.Search)
	v.Set("sort", string(sort))
	if !q.Category.IsAll() {
		v.Set("category", q.Category.Value())
	}
	return v
}
