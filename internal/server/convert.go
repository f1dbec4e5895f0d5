package server

import (
	"github.com/samber/lo"

	"profassist/internal/domain/entity"
	"profassist/pkg/rest"
)

func newRESTProfessor(p entity.Professor) rest.Professor {
	return rest.Professor{
		Name:           p.Name,
		Rating:         p.Rating,
		Difficulty:     p.Difficulty,
		WouldTakeAgain: p.WouldTakeAgain,
		NumRatings:     p.NumRatings,
		Department:     p.Department,
		Summary:        p.Summary,
		Reviews:        lo.Map(p.Reviews, newRESTReview),
	}
}

func newRESTReview(r entity.Review, _ int) rest.Review {
	return rest.Review{
		Rating: r.Rating,
		Text:   r.Text,
		Course: r.Course,
		Date:   r.Date,
	}
}
