package errcodes

type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

const (
	InternalServerError  ErrorCode = "InternalServerError"
	TimeoutExceeded      ErrorCode = "TimeoutExceeded"
	ValidationError      ErrorCode = "ValidationError"
	NotFound             ErrorCode = "NotFound"
	RequestCanceled      ErrorCode = "RequestCanceled"
	InvalidProfessorName ErrorCode = "InvalidProfessorName"
	ProfessorNotFound    ErrorCode = "ProfessorNotFound"
)
