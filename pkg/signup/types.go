package signup

import "net/http"

// Request is the parsed signup body. Every field is optional at the
// transport boundary; for string fields an absent key and an empty string
// are indistinguishable, and both are rejected by validation.
type Request struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

// Response is the controller's verdict on one request. StatusCode is one of
// 200, 400 or 500; Body holds the created account only on 200 and an Error
// value otherwise. A Response is never mutated after construction.
type Response struct {
	StatusCode int
	Body       any
}

func ok(body any) Response {
	return Response{StatusCode: http.StatusOK, Body: body}
}

func badRequest(err Error) Response {
	return Response{StatusCode: http.StatusBadRequest, Body: err}
}

func serverError() Response {
	return Response{StatusCode: http.StatusInternalServerError, Body: NewServerError()}
}
