package reply_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"profassist/pkg/contextx"
	"profassist/pkg/errcodes"
	"profassist/pkg/httpx/reply"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type testCodedError struct {
	code    errcodes.ErrorCode
	message string
}

func (e testCodedError) Error() string                 { return e.message }
func (e testCodedError) ErrorCode() errcodes.ErrorCode { return e.code }
func (e testCodedError) ClientMessage() string         { return e.message }

func TestError(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		err        error
		statusCode int
		code       string
		message    string
	}{
		{
			name:       "Invalid professor name",
			err:        fmt.Errorf("wrap: %w", testCodedError{errcodes.InvalidProfessorName, "Professor name is required."}),
			statusCode: http.StatusBadRequest,
			code:       "InvalidProfessorName",
			message:    "Professor name is required.",
		},
		{
			name:       "Professor not found",
			err:        testCodedError{errcodes.ProfessorNotFound, "No professor found for 'x' at UW Tacoma."},
			statusCode: http.StatusNotFound,
			code:       "ProfessorNotFound",
			message:    "No professor found for 'x' at UW Tacoma.",
		},
		{
			name:       "Canceled",
			err:        fmt.Errorf("resolve: %w", context.Canceled),
			statusCode: reply.StatusClientClosedRequest,
			code:       "RequestCanceled",
		},
		{
			name:       "Deadline",
			err:        fmt.Errorf("resolve: %w", context.DeadlineExceeded),
			statusCode: http.StatusGatewayTimeout,
			code:       "TimeoutExceeded",
			message:    "Upstream timeout exceeded.",
		},
		{
			name:       "Unknown",
			err:        errors.New("boom"),
			statusCode: http.StatusInternalServerError,
			code:       "InternalServerError",
			message:    "Internal server error.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			ctx := contextx.WithTraceID(context.Background(), "trace-1")
			w := httptest.NewRecorder()

			reply.Error(ctx, w, tc.err)

			rq.Equal(tc.statusCode, w.Code)
			rq.Equal("application/json; charset=utf-8", w.Header().Get("Content-Type"))

			var body map[string]string

			rq.NoError(json.Unmarshal(w.Body.Bytes(), &body))
			rq.Equal(tc.code, body["code"])
			rq.Equal(tc.message, body["message"])
			rq.Equal("trace-1", body["supportId"])
		})
	}
}
