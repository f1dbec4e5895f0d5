package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"profassist/internal/domain"
	"profassist/internal/domain/entity"
	"profassist/pkg/errcodes"
	"profassist/pkg/httpx/reply"
	"profassist/pkg/httpx/req"
)

type professorService interface {
	Resolve(ctx context.Context, name string) (entity.Professor, error)
}

type ProfessorServer struct {
	professorService professorService
}

func NewProfessorServer(professorService professorService) ProfessorServer {
	return ProfessorServer{
		professorService: professorService,
	}
}

type professorQuery struct {
	Name string `validate:"required,max=200"`
}

func (s ProfessorServer) getProfessor(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	query := professorQuery{
		Name: strings.TrimSpace(r.URL.Query().Get("name")),
	}

	if err := req.Validate(r, &query); err != nil {
		return invalidName(err)
	}

	professor, err := s.professorService.Resolve(ctx, query.Name)
	if err != nil {
		return fmt.Errorf("professorService.Resolve: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTProfessor(professor))

	return nil
}

func invalidName(err error) error {
	message := "Professor name is required."

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "max" {
		message = fmt.Sprintf("Professor name must be at most %s characters.", verrs[0].Param())
	}

	return domain.WrapError(err, errcodes.InvalidProfessorName, message)
}
