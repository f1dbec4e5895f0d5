package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"profassist/internal/domain/entity"
	"profassist/internal/domain/service/matcher"
)

func candidate(id, first, last string, numRatings int) entity.Candidate {
	return entity.Candidate{ID: id, FirstName: first, LastName: last, NumRatings: numRatings}
}

func TestMatch(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		query      string
		candidates []entity.Candidate
		wantID     string
		wantOK     bool
	}{
		{
			name:       "Exact full name",
			query:      "Jane Doe",
			candidates: []entity.Candidate{candidate("1", "Jane", "Doe", 12)},
			wantID:     "1",
			wantOK:     true,
		},
		{
			name:       "Case and spacing are ignored",
			query:      "  jANE    dOE ",
			candidates: []entity.Candidate{candidate("1", " Jane ", "Doe ", 3)},
			wantID:     "1",
			wantOK:     true,
		},
		{
			name:       "Reversed order still matches",
			query:      "Doe Jane",
			candidates: []entity.Candidate{candidate("1", "Jane", "Doe", 3)},
			wantID:     "1",
			wantOK:     true,
		},
		{
			name:       "Extra tokens are allowed",
			query:      "Dr. Jane Q Doe",
			candidates: []entity.Candidate{candidate("1", "Jane", "Doe", 3)},
			wantID:     "1",
			wantOK:     true,
		},
		{
			name:       "Single token never matches",
			query:      "Smith",
			candidates: []entity.Candidate{candidate("1", "John", "Smith", 40), candidate("2", "Smith", "Jones", 2)},
			wantOK:     false,
		},
		{
			name:       "Partial token is not a match",
			query:      "Jan Doe",
			candidates: []entity.Candidate{candidate("1", "Jane", "Doe", 3)},
			wantOK:     false,
		},
		{
			name:       "Unrated candidates are skipped",
			query:      "Jane Doe",
			candidates: []entity.Candidate{candidate("1", "Jane", "Doe", 0), candidate("2", "Jane", "Doe", 5)},
			wantID:     "2",
			wantOK:     true,
		},
		{
			name:       "Only unrated candidates",
			query:      "Jane Doe",
			candidates: []entity.Candidate{candidate("1", "Jane", "Doe", 0)},
			wantOK:     false,
		},
		{
			name:       "First match in input order wins",
			query:      "Jane Doe",
			candidates: []entity.Candidate{candidate("1", "Jane", "Smith", 9), candidate("2", "Jane", "Doe", 1), candidate("3", "Jane", "Doe", 50)},
			wantID:     "2",
			wantOK:     true,
		},
		{
			name:   "No candidates",
			query:  "Jane Doe",
			wantOK: false,
		},
		{
			name:       "Empty query",
			query:      "   ",
			candidates: []entity.Candidate{candidate("1", "Jane", "Doe", 3)},
			wantOK:     false,
		},
		{
			name:       "Blank candidate names never match",
			query:      "Doe",
			candidates: []entity.Candidate{candidate("1", "", "Doe", 3)},
			wantOK:     false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			got, ok := matcher.Match(tc.query, tc.candidates)

			rq.Equal(tc.wantOK, ok)
			rq.Equal(tc.wantID, got.ID)
		})
	}
}

func TestTokens(t *testing.T) {
	rq := require.New(t)

	rq.Equal(map[string]bool{"jane": true, "doe": true}, matcher.Tokens(" Jane\tDOE  jane "))
	rq.Empty(matcher.Tokens("   "))
}
