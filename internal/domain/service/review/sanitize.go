// Package review turns raw review-site ratings into canonical reviews.
package review

import (
	"strings"

	"github.com/samber/lo"

	"profassist/internal/domain/entity"
)

const dateLen = 10

// Sanitize normalizes one raw review. It reports false when the review has no
// comment text; every other malformed field degrades to its default.
func Sanitize(raw entity.RawReview) (entity.Review, bool) {
	text := strings.TrimSpace(raw.Comment)
	if text == "" {
		return entity.Review{}, false
	}

	r := entity.Review{
		Rating: lo.FromPtr(raw.QualityRating),
		Text:   text,
	}

	if raw.Class != "" {
		r.Course = lo.ToPtr(raw.Class)
	}

	if raw.Date != "" {
		r.Date = lo.ToPtr(lo.Substring(raw.Date, 0, dateLen))
	}

	return r, true
}

// SanitizeAll applies Sanitize to every raw review, keeping input order and
// dropping the empty ones.
func SanitizeAll(raws []entity.RawReview) []entity.Review {
	return lo.FilterMap(raws, func(raw entity.RawReview, _ int) (entity.Review, bool) {
		return Sanitize(raw)
	})
}
