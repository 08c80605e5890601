package persistence

import (
	"regexp"
	"strings"

	"github.com/atelier/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// orderByPattern restricts user-supplied sort columns to plain identifiers so
// they can be spliced into the ORDER BY clause safely.
var orderByPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// applyListOptions applies ordering and pagination from the filter. An
// OrderBy value that is not a plain column identifier falls back to the
// caller's default ordering.
func applyListOptions(query *gorm.DB, filter shared.Filter, defaultOrder string) *gorm.DB {
	if filter.OrderBy != "" && orderByPattern.MatchString(filter.OrderBy) {
		dir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			dir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + dir)
	} else {
		query = query.Order(defaultOrder)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	return query
}
