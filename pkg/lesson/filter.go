package lesson

import (
	"strconv"
	"strings"
)

// Filter is the search criteria for lessons. A lesson matches when ANY of the
// four clauses matches:
//
//   - subject contains Term (case-insensitive substring)
//   - location contains Term (case-insensitive substring)
//   - the textual form of price contains Term (case-insensitive substring)
//   - spaces equals Spaces exactly
//
// Spaces carries the sentinel -1 when the query does not parse as an integer,
// which can never equal a valid non-negative spaces value, so the clause is
// disabled rather than erroring.
type Filter struct {
	Term   string
	Spaces int
}

// NewFilter builds a Filter from the raw q query parameter.
func NewFilter(q string) Filter {
	q = strings.TrimSpace(q)
	spaces := -1
	if n, err := strconv.Atoi(q); err == nil {
		spaces = n
	}
	return Filter{Term: q, Spaces: spaces}
}

// Empty reports whether the filter matches everything.
func (f Filter) Empty() bool {
	return f.Term == ""
}

// Matches evaluates the filter against a single lesson. This is the reference
// semantics; store-backed repositories must produce the same result set with
// their native query language.
func (f Filter) Matches(l Lesson) bool {
	if f.Empty() {
		return true
	}
	term := strings.ToLower(f.Term)
	if strings.Contains(strings.ToLower(l.Subject), term) {
		return true
	}
	if strings.Contains(strings.ToLower(l.Location), term) {
		return true
	}
	if strings.Contains(priceText(l.Price), term) {
		return true
	}
	return l.Spaces == f.Spaces
}

// priceText is the canonical textual representation of a price for substring
// matching: no exponent, no trailing zeros (100 -> "100", 89.5 -> "89.5").
func priceText(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
