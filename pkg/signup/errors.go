package signup

// Error is the structured error carried in a Response body. It is an
// immutable value: two errors built for the same field and kind compare
// equal with ==.
type Error struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (e Error) Error() string {
	return e.Message
}

// NewMissingParamError reports a required request field that was absent or
// empty. The field name is used verbatim as received in the request.
func NewMissingParamError(field string) Error {
	return Error{Name: "MissingParamError", Message: "Missing param: " + field}
}

// NewInvalidParamError reports a present field that fails a semantic rule,
// such as a mismatched confirmation or a malformed email.
func NewInvalidParamError(field string) Error {
	return Error{Name: "InvalidParamError", Message: "Invalid param: " + field}
}

// NewServerError reports an unexpected collaborator failure. The message is
// deliberately generic so internals never reach the client.
func NewServerError() Error {
	return Error{Name: "ServerError", Message: "Internal server error"}
}
