package ratemyprof

import (
	"context"
	"fmt"
	"strings"

	"profassist/internal/domain/entity"
)

const searchTeachersQuery = `query SearchTeachers($text: String!, $schoolID: ID!) {
  newSearch {
    teachers(query: {text: $text, schoolID: $schoolID}) {
      edges {
        node {
          id
          firstName
          lastName
          avgRating
          avgDifficulty
          wouldTakeAgainPercent
          numRatings
          department
        }
      }
    }
  }
}`

const teacherRatingsQuery = `query TeacherRatings($id: ID!, $count: Int!) {
  node(id: $id) {
    ... on Teacher {
      ratings(first: $count) {
        edges {
          node {
            comment
            qualityRating
            class
            date
          }
        }
      }
    }
  }
}`

type teacherNode struct {
	ID                    string     `json:"id"`
	FirstName             string     `json:"firstName"`
	LastName              string     `json:"lastName"`
	AvgRating             flexNumber `json:"avgRating"`
	AvgDifficulty         flexNumber `json:"avgDifficulty"`
	WouldTakeAgainPercent flexNumber `json:"wouldTakeAgainPercent"`
	NumRatings            int        `json:"numRatings"`
	Department            string     `json:"department"`
}

type searchData struct {
	NewSearch struct {
		Teachers struct {
			Edges []struct {
				Node teacherNode `json:"node"`
			} `json:"edges"`
		} `json:"teachers"`
	} `json:"newSearch"`
}

type ratingNode struct {
	Comment       string     `json:"comment"`
	QualityRating flexNumber `json:"qualityRating"`
	Class         string     `json:"class"`
	Date          string     `json:"date"`
}

type ratingsData struct {
	Node *struct {
		Ratings struct {
			Edges []struct {
				Node ratingNode `json:"node"`
			} `json:"edges"`
		} `json:"ratings"`
	} `json:"node"`
}

// SearchTeachers returns the candidates the site lists for name at the school,
// in the site's order.
func (c *Client) SearchTeachers(ctx context.Context, name, schoolID string) ([]entity.Candidate, error) {
	var data searchData

	err := c.query(ctx, searchTeachersQuery, map[string]any{
		"text":     name,
		"schoolID": schoolID,
	}, &data)
	if err != nil {
		return nil, fmt.Errorf("c.query(SearchTeachers): %w", err)
	}

	edges := data.NewSearch.Teachers.Edges

	candidates := make([]entity.Candidate, 0, len(edges))
	for _, e := range edges {
		candidates = append(candidates, newCandidate(e.Node))
	}

	return candidates, nil
}

// FetchRatings returns up to count of the teacher's most recent ratings.
func (c *Client) FetchRatings(ctx context.Context, teacherID string, count int) ([]entity.RawReview, error) {
	var data ratingsData

	err := c.query(ctx, teacherRatingsQuery, map[string]any{
		"id":    teacherID,
		"count": count,
	}, &data)
	if err != nil {
		return nil, fmt.Errorf("c.query(TeacherRatings): %w", err)
	}

	if data.Node == nil {
		return nil, fmt.Errorf("teacher %q: %w", teacherID, ErrTeacherNotFound)
	}

	edges := data.Node.Ratings.Edges

	reviews := make([]entity.RawReview, 0, len(edges))
	for _, e := range edges {
		reviews = append(reviews, entity.RawReview{
			Comment:       e.Node.Comment,
			QualityRating: e.Node.QualityRating.value,
			Class:         e.Node.Class,
			Date:          e.Node.Date,
		})
	}

	return reviews, nil
}

func newCandidate(n teacherNode) entity.Candidate {
	return entity.Candidate{
		ID:                    n.ID,
		FirstName:             n.FirstName,
		LastName:              n.LastName,
		Rating:                n.AvgRating.value,
		Difficulty:            n.AvgDifficulty.value,
		WouldTakeAgainPercent: n.WouldTakeAgainPercent.value,
		NumRatings:            n.NumRatings,
		Department:            strings.TrimSpace(n.Department),
	}
}
