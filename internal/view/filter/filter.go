// Package filter decides which listings the directory page shows for the
// active filter token.
package filter

import (
	"strings"

	"apartio/internal/domain/entity"
)

// Match reports whether a listing is shown under the given filter token.
// Resolution is three-tiered: a known status value compares against the
// listing's status, a known type value against its transaction type, and
// anything else falls back to a substring match on both fields so an
// unanticipated token narrows the list instead of crashing it. An empty
// token or "all" includes everything.
func Match(apartment *entity.Apartment, token string) bool {
	f := strings.ToLower(strings.TrimSpace(token))

	if apartment == nil || f == "" || f == "all" {
		return true
	}

	status := strings.ToLower(apartment.Status)
	saleType := strings.ToLower(apartment.Type)

	switch f {
	case entity.StatusAvailable, entity.StatusRented, entity.StatusSold:
		return status == f
	case entity.TypeRent, entity.TypeSale:
		return saleType == f
	}

	return strings.Contains(status, f) || strings.Contains(saleType, f)
}

// Apply returns the listings matching the token, preserving order. A token
// nothing matches yields an empty slice, never an error.
func Apply(apartments []*entity.Apartment, token string) []*entity.Apartment {
	result := []*entity.Apartment{}
	for _, apartment := range apartments {
		if Match(apartment, token) {
			result = append(result, apartment)
		}
	}
	return result
}
