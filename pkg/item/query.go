package item

import (
	"Surplus-Market/domain"
	"strconv"
	"strings"
)

type SortKey string

const (
	SortRecent    SortKey = "recent"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortExpiry    SortKey = "expiry"
)

const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100
)

// ListQuery is the parsed filter, sort and pagination window for a listing
// read. Category is empty when no category filter applies.
type ListQuery struct {
	Category string
	Search   string
	Sort     SortKey
	Page     int
	Limit    int
}

func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ParseListQuery builds a ListQuery from the raw query-string values.
// Category must be a known category or "all" (case-insensitive); page and
// limit must be positive integers when present. An unknown sortBy falls back
// to recent ordering. Limits above MaxLimit are capped.
func ParseListQuery(category, search, sortBy, page, limit string) (ListQuery, error) {
	q := ListQuery{
		Search: strings.TrimSpace(search),
		Sort:   SortRecent,
		Page:   DefaultPage,
		Limit:  DefaultLimit,
	}

	if category != "" && !strings.EqualFold(category, "all") {
		normalized := strings.ToUpper(category)
		if !domain.Categories[normalized] {
			return ListQuery{}, domain.ErrInvalidCategory
		}
		q.Category = normalized
	}

	switch SortKey(sortBy) {
	case SortPriceAsc, SortPriceDesc, SortExpiry:
		q.Sort = SortKey(sortBy)
	}

	var err error
	if q.Page, q.Limit, err = ParseWindow(page, limit); err != nil {
		return ListQuery{}, err
	}

	return q, nil
}

// ParseWindow parses the raw page and limit values with the same rules as
// ParseListQuery: empty means the default, anything non-numeric or below 1
// is rejected, and limits above MaxLimit are capped.
func ParseWindow(page, limit string) (int, int, error) {
	parsedPage := DefaultPage
	if page != "" {
		parsed, err := strconv.Atoi(page)
		if err != nil || parsed < 1 {
			return 0, 0, domain.ErrInvalidPage
		}
		parsedPage = parsed
	}

	parsedLimit := DefaultLimit
	if limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil || parsed < 1 {
			return 0, 0, domain.ErrInvalidLimit
		}
		if parsed > MaxLimit {
			parsed = MaxLimit
		}
		parsedLimit = parsed
	}

	return parsedPage, parsedLimit, nil
}

// OrderClause maps the sort key to its SQL ordering.
func (q ListQuery) OrderClause() string {
	switch q.Sort {
	case SortPriceAsc:
		return "current_price ASC"
	case SortPriceDesc:
		return "current_price DESC"
	case SortExpiry:
		return "expiry_date ASC"
	default:
		return "created_at DESC"
	}
}
