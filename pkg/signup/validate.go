package signup

// requiredFields is the fixed presence-check order. Only the first violated
// rule is reported so clients get a single actionable error per call.
var requiredFields = []string{"name", "email", "password", "passwordConfirmation"}

func (r Request) field(name string) string {
	switch name {
	case "name":
		return r.Name
	case "email":
		return r.Email
	case "password":
		return r.Password
	case "passwordConfirmation":
		return r.PasswordConfirmation
	}
	return ""
}

// validate reports the first structural defect in the request, or nil when
// the body is structurally valid. Presence checks run field by field in
// requiredFields order; only then is the password confirmation compared.
func validate(req Request) *Error {
	for _, name := range requiredFields {
		if req.field(name) == "" {
			err := NewMissingParamError(name)
			return &err
		}
	}

	if req.Password != req.PasswordConfirmation {
		err := NewInvalidParamError("passwordConfirmation")
		return &err
	}

	return nil
}
