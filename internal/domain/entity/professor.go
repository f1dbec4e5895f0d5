package entity

// Candidate is one teacher record returned by the review-site search. It
// only lives for the duration of a single resolution.
type Candidate struct {
	ID                    string
	FirstName             string
	LastName              string
	Rating                *float64
	Difficulty            *float64
	WouldTakeAgainPercent *float64 // negative means unknown
	NumRatings            int
	Department            string
}

func (c Candidate) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Professor is the assembled, cacheable answer for one professor name.
// It is treated as immutable once built.
type Professor struct {
	Name           string
	Rating         float64
	Difficulty     *float64
	WouldTakeAgain *float64
	NumRatings     int
	Department     *string
	Summary        string
	Reviews        []Review
}

// School is the fixed institution every search is scoped to.
type School struct {
	ID   string
	Name string
}
