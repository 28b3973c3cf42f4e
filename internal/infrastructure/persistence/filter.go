package persistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/inventorypro/backend/internal/domain/shared"
)

// applySort applies ordering from the filter. OrderBy is checked
// against the caller's column whitelist so user input never reaches
// the ORDER BY clause unvalidated.
func applySort(query *gorm.DB, filter shared.Filter, allowed map[string]bool, defaultOrder string) *gorm.DB {
	if filter.OrderBy != "" && allowed[filter.OrderBy] {
		dir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			dir = "DESC"
		}
		return query.Order(filter.OrderBy + " " + dir)
	}
	return query.Order(defaultOrder)
}

// applyPagination applies offset/limit from the filter
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}

// applySearch applies a case-insensitive substring match over the given
// columns. Lowered LIKE rather than ILIKE so the same query runs on
// both Postgres and the SQLite fallback.
func applySearch(query *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" || len(columns) == 0 {
		return query
	}

	pattern := "%" + strings.ToLower(search) + "%"
	clauses := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		clauses[i] = "LOWER(" + col + ") LIKE ?"
		args[i] = pattern
	}
	return query.Where(strings.Join(clauses, " OR "), args...)
}
