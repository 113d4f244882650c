package signup

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renanferminojc/clean-go-api/pkg/account"
)

func newTestServer(t *testing.T) (*httptest.Server, *mockEmailValidator, *mockAddAccount) {
	t.Helper()

	controller, emailValidator, addAccount := newTestController()
	handle := NewHandle(controller)

	r := chi.NewRouter()
	r.Route("/api/signup", handle.RegisterRoutes)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return server, emailValidator, addAccount
}

func postSignup(t *testing.T, server *httptest.Server, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(server.URL+"/api/signup", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func decodeError(t *testing.T, resp *http.Response) Error {
	t.Helper()

	var body Error
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestSignupSuccess(t *testing.T) {
	server, _, _ := newTestServer(t)

	req := validRequest()
	payload, err := json.Marshal(req)
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/api/signup", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var created account.Account
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, account.Account{
		ID:       "valid_id",
		Name:     "Jhon Doe",
		Email:    "valid_email@mail.com",
		Password: "valid_password",
	}, created)
}

func TestSignupMissingField(t *testing.T) {
	server, _, addAccount := newTestServer(t)

	resp := postSignup(t, server, `{"name":"Jhon Doe","password":"pwd","passwordConfirmation":"pwd"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, NewMissingParamError("email"), decodeError(t, resp))
	assert.Equal(t, 0, addAccount.calls)
}

func TestSignupEmptyBody(t *testing.T) {
	server, _, _ := newTestServer(t)

	resp := postSignup(t, server, "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, NewMissingParamError("name"), decodeError(t, resp))
}

func TestSignupMalformedBody(t *testing.T) {
	server, _, addAccount := newTestServer(t)

	resp := postSignup(t, server, `{"name": `)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, NewInvalidParamError("body"), decodeError(t, resp))
	assert.Equal(t, 0, addAccount.calls)
}

func TestSignupValidatorFailure(t *testing.T) {
	server, emailValidator, _ := newTestServer(t)
	emailValidator.err = assert.AnError

	req := validRequest()
	payload, err := json.Marshal(req)
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/api/signup", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, NewServerError(), decodeError(t, resp))
}
