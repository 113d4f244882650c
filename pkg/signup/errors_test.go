package signup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "Missing param: email", NewMissingParamError("email").Message)
	assert.Equal(t, "MissingParamError", NewMissingParamError("email").Name)

	assert.Equal(t, "Invalid param: passwordConfirmation", NewInvalidParamError("passwordConfirmation").Message)
	assert.Equal(t, "InvalidParamError", NewInvalidParamError("passwordConfirmation").Name)

	assert.Equal(t, "ServerError", NewServerError().Name)
}

func TestErrorsCompareByValue(t *testing.T) {
	assert.Equal(t, NewMissingParamError("name"), NewMissingParamError("name"))
	assert.NotEqual(t, NewMissingParamError("name"), NewMissingParamError("email"))
	assert.NotEqual(t, NewMissingParamError("email"), NewInvalidParamError("email"))
}
