// Package matcher picks the one search candidate a free-text name refers to.
//
// Matching is exact on whole tokens: a candidate is chosen only when both its
// first and last name appear in the query. A query that names a professor
// partially ("Smith") never matches, so the caller reports not-found instead
// of guessing.
package matcher

import (
	"strings"

	"github.com/samber/lo"

	"profassist/internal/domain/entity"
)

// Match returns the first rated candidate whose first and last names are both
// whole tokens of query, compared case-insensitively.
func Match(query string, candidates []entity.Candidate) (entity.Candidate, bool) {
	tokens := Tokens(query)
	if len(tokens) == 0 {
		return entity.Candidate{}, false
	}

	rated := lo.Filter(candidates, func(c entity.Candidate, _ int) bool {
		return c.NumRatings > 0
	})

	return lo.Find(rated, func(c entity.Candidate) bool {
		first := normalize(c.FirstName)
		last := normalize(c.LastName)

		return first != "" && last != "" && tokens[first] && tokens[last]
	})
}

// Tokens splits s on whitespace into a lowercase token set.
func Tokens(s string) map[string]bool {
	fields := strings.Fields(strings.ToLower(s))

	return lo.SliceToMap(fields, func(f string) (string, bool) {
		return f, true
	})
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
