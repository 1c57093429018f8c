package graph

// Stable error codes carried in the extensions of every API error. Clients
// dispatch on the code; the message is for humans.
const (
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeValidation         = "VALIDATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeInternal           = "INTERNAL"
)

// Error is a typed resolver error. It implements the ResolverError
// extension hook so the code survives into the response's error list.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

func errUnauthenticated() *Error {
	return &Error{Code: CodeUnauthenticated, Message: "You need to be logged in"}
}

func errInvalidCredentials() *Error {
	return &Error{Code: CodeInvalidCredentials, Message: "Incorrect credentials"}
}

func errValidation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

func errNotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func errInternal() *Error {
	return &Error{Code: CodeInternal, Message: "Something went wrong"}
}
