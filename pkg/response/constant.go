package response

const (
	MessageSuccess = "Success"

	// DefaultErrorMessage is what callers see for any internal failure.
	DefaultErrorMessage = "Sorry, I encountered an error processing that request."

	ValidationErrorCode         = 1
	NotFoundErrorCode           = 404
	TooManyRequestsErrorCode    = 429
	InternalServerErrorCode     = 500
	ServiceUnavailableErrorCode = 503
)
