package response

const (
	// MessageSuccess is the message for successful responses.
	MessageSuccess = "Success"

	// InternalServerErrorCode is the error code for internal server errors.
	InternalServerErrorCode = 500

	// DefaultErrorMessage is the message for internal server errors.
	DefaultErrorMessage = "Something went wrong"
)
