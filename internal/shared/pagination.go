package shared

import (
	"errors"
	"net/url"
	"strconv"
)

// PageQuery carries offset/limit pagination bounds for listings and
// for the upstream relay, which uses the same convention.
type PageQuery struct {
	Offset int
	Limit  int
}

const defaultPageLimit = 10

var (
	// ErrNegativeOffset rejects offsets smaller than zero.
	ErrNegativeOffset = errors.New("the offset attribute cannot be smaller than zero")
	// ErrNonPositiveLimit rejects limits of zero or less.
	ErrNonPositiveLimit = errors.New("the limit attribute cannot be less than or equal to zero")
)

// ParsePageQuery reads offset and limit query parameters, applying defaults
// and validating bounds.
func ParsePageQuery(values url.Values) (PageQuery, error) {
	page := PageQuery{Offset: 0, Limit: defaultPageLimit}

	if raw := values.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return PageQuery{}, ErrNegativeOffset
		}
		page.Offset = offset
	}
	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return PageQuery{}, ErrNonPositiveLimit
		}
		page.Limit = limit
	}

	if page.Offset < 0 {
		return PageQuery{}, ErrNegativeOffset
	}
	if page.Limit <= 0 {
		return PageQuery{}, ErrNonPositiveLimit
	}
	return page, nil
}
