package account

// Account is the created account model returned by the AddAccount use case.
// Password holds the stored credential in hashed form, never the plaintext.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateAccountParams is the sanitized creation input. It deliberately has
// no password confirmation field; confirmation is consumed by the signup
// controller and never forwarded downstream.
type CreateAccountParams struct {
	Name     string
	Email    string
	Password string
}
