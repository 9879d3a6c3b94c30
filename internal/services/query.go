package services

import (
	"strings"

	"gorm.io/gorm"
)

const defaultPageSize = 50

func applyPage(q *gorm.DB, limit, offset int) *gorm.DB {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return q.Limit(limit).Offset(offset)
}

// likeFold adds a case-insensitive substring match on column. The column
// name is always a literal from the calling service, never user input.
func likeFold(q *gorm.DB, column, needle string) *gorm.DB {
	return q.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(needle)+"%")
}

// skillsOverlap builds a set-overlap condition against a StringList column:
// a row matches when its JSON-encoded list contains any of the given
// skills. LIKE against the quoted element runs the same on postgres and the
// sqlite test store.
func skillsOverlap(db *gorm.DB, column string, skills []string) *gorm.DB {
	cond := db.Session(&gorm.Session{NewDB: true})
	for i, skill := range skills {
		pattern := `%"` + strings.TrimSpace(skill) + `"%`
		if i == 0 {
			cond = cond.Where(column+" LIKE ?", pattern)
		} else {
			cond = cond.Or(column+" LIKE ?", pattern)
		}
	}
	return cond
}
