package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldCacheEntries    = "cache-entries"
	FieldCandidates      = "candidates"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldNumRatings      = "num-ratings"
	FieldOperation       = "operation"
	FieldProfessor       = "professor"
	FieldProfessorID     = "professor-id"
	FieldQuery           = "query"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldReviews         = "reviews"
	FieldSchool          = "school"
	FieldStack           = "stack"
	FieldText            = "text"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)
