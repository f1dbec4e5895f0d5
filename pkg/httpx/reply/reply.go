package reply

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"profassist/pkg/contextx"
	"profassist/pkg/errcodes"
	"profassist/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// StatusClientClosedRequest is the nginx convention for a caller that went away.
const StatusClientClosedRequest = 499

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

func (e *errorResponse) WithDefaultCode(code errcodes.ErrorCode) {
	if e.Code == "" {
		e.Code = code.String()
	}
}

func (e *errorResponse) WithDefaultMessage(message string) {
	if e.Message == "" {
		e.Message = message
	}
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// codedError is implemented by errors that carry an API error code and a
// message safe to show to the client.
type codedError interface {
	error
	ErrorCode() errcodes.ErrorCode
	ClientMessage() string
}

func describe(err error) (errcodes.ErrorCode, string) {
	var coded codedError
	if errors.As(err, &coded) {
		return coded.ErrorCode(), coded.ClientMessage()
	}

	return "", ""
}

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	code, message := describe(err)
	status := statusFor(code, err)

	if status >= http.StatusInternalServerError {
		logger(ctx).Error("error", logx.Error(err))
	} else {
		logger(ctx).Info("error", logx.Error(err))
	}

	response := errorResponse{
		Code:      code.String(),
		Message:   message,
		SupportID: supportID(ctx),
	}

	switch status {
	case http.StatusBadRequest:
		response.WithDefaultCode(errcodes.ValidationError)
	case http.StatusNotFound:
		response.WithDefaultCode(errcodes.NotFound)
	case http.StatusGatewayTimeout:
		response.WithDefaultCode(errcodes.TimeoutExceeded)
		response.WithDefaultMessage("Upstream timeout exceeded.")
	case StatusClientClosedRequest:
		response.WithDefaultCode(errcodes.RequestCanceled)
	default:
		response.WithDefaultCode(errcodes.InternalServerError)
		response.WithDefaultMessage("Internal server error.")
	}

	JSON(ctx, w, status, response)
}

func statusFor(code errcodes.ErrorCode, err error) int {
	switch code {
	case errcodes.ValidationError, errcodes.InvalidProfessorName:
		return http.StatusBadRequest
	case errcodes.NotFound, errcodes.ProfessorNotFound:
		return http.StatusNotFound
	case errcodes.TimeoutExceeded:
		return http.StatusGatewayTimeout
	case errcodes.RequestCanceled:
		return StatusClientClosedRequest
	}

	switch {
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
