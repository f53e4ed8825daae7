package repository

import (
	"strings"

	"gorm.io/gorm"

	"crudboard/internal/models"
)

// predicate is one WHERE fragment with its arguments. Predicates built from
// a search condition are always combined conjunctively.
type predicate struct {
	query string
	args  []any
}

// escapeLike backslash-escapes the LIKE metacharacters so the keyword always
// matches literally. Pairs with the ESCAPE clause on the predicates below.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// buildPostPredicates translates a search condition into SQL predicates.
// A blank keyword adds no keyword filter; the keyword match is a
// case-insensitive literal substring match against the fields selected by the
// search type (defaulting to title OR content); date bounds are inclusive. An
// empty condition yields no predicates and matches every post.
func buildPostPredicates(cond models.PostSearchCondition) []predicate {
	var preds []predicate

	if keyword := strings.TrimSpace(cond.Keyword); keyword != "" {
		like := "%" + escapeLike(strings.ToLower(keyword)) + "%"
		searchType := cond.Type
		if searchType == "" {
			searchType = models.SearchTitleContent
		}
		switch searchType {
		case models.SearchTitle:
			preds = append(preds, predicate{`LOWER(title) LIKE ? ESCAPE '\'`, []any{like}})
		case models.SearchContent:
			preds = append(preds, predicate{`LOWER(content) LIKE ? ESCAPE '\'`, []any{like}})
		default:
			preds = append(preds, predicate{`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(content) LIKE ? ESCAPE '\')`, []any{like, like}})
		}
	}

	if cond.CreatedFrom != nil {
		preds = append(preds, predicate{"created_at >= ?", []any{*cond.CreatedFrom}})
	}
	if cond.CreatedTo != nil {
		preds = append(preds, predicate{"created_at <= ?", []any{*cond.CreatedTo}})
	}

	return preds
}

// postSearchScope applies the condition's predicates to a query.
func postSearchScope(cond models.PostSearchCondition) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, p := range buildPostPredicates(cond) {
			db = db.Where(p.query, p.args...)
		}
		return db
	}
}

// Columns clients may sort by, mapped onto their SQL names. Anything else
// falls back to the default ordering.
var sortColumns = map[string]string{
	"id":        "id",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// orderClause converts a "field,direction" sort parameter into an ORDER BY
// expression, falling back to def for unknown fields. Direction defaults to
// descending, matching the board's newest-first listings.
func orderClause(sort, def string) string {
	field, direction, _ := strings.Cut(sort, ",")
	column, ok := sortColumns[strings.TrimSpace(field)]
	if !ok {
		return def
	}
	if strings.EqualFold(strings.TrimSpace(direction), "asc") {
		return column + " ASC"
	}
	return column + " DESC"
}
