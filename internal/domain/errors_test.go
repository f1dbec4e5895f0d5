package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"profassist/internal/domain"
	"profassist/pkg/errcodes"
)

func TestAppError(t *testing.T) {
	rq := require.New(t)

	cause := errors.New("upstream closed")
	err := fmt.Errorf("professorService.Resolve: %w",
		domain.WrapError(cause, errcodes.ProfessorNotFound, "No professor found for 'x' at UW Tacoma."))

	rq.True(domain.IsAppError(err))
	rq.ErrorIs(err, cause)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.ProfessorNotFound, code)
	rq.Equal("No professor found for 'x' at UW Tacoma.", domain.Description(err))
	rq.Equal("professorService.Resolve: No professor found for 'x' at UW Tacoma.: upstream closed", err.Error())

	plain := errors.New("boom")
	rq.False(domain.IsAppError(plain))
	rq.Empty(domain.Description(plain))

	_, ok = domain.GetCode(plain)
	rq.False(ok)

	rq.Equal("bad input", domain.NewError(errcodes.InvalidProfessorName, "bad input").Error())
}
