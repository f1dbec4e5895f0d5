package entity

// RawReview is a rating record as the review site returns it.
type RawReview struct {
	Comment       string
	QualityRating *float64
	Class         string
	Date          string
}

// Review is a sanitized review that passed moderation. Text is never empty.
type Review struct {
	Rating float64
	Text   string
	Course *string
	Date   *string
}
