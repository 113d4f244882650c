package signup

import (
	"context"
	"log/slog"

	"github.com/renanferminojc/clean-go-api/pkg/account"
	"github.com/renanferminojc/clean-go-api/pkg/validator"
)

// Controller turns a parsed signup request into a Response. It owns the
// ordering of checks and the failure classification: an email validator
// answering "no" is a client error, a validator failing is a server fault.
type Controller struct {
	emailValidator validator.EmailValidator
	addAccount     account.AddAccount
}

// NewController creates a signup controller with its two collaborators.
func NewController(emailValidator validator.EmailValidator, addAccount account.AddAccount) *Controller {
	return &Controller{
		emailValidator: emailValidator,
		addAccount:     addAccount,
	}
}

// Handle runs the signup pipeline: structural validation, email validation,
// account creation. The first failing stage terminates the pipeline, so a
// rejected request never reaches the account use case.
func (c *Controller) Handle(ctx context.Context, req Request) Response {
	if defect := validate(req); defect != nil {
		return badRequest(*defect)
	}

	// The validator sees the raw email string, never a transformed value.
	valid, err := c.emailValidator.IsValid(req.Email)
	if err != nil {
		slog.Error("Email validation failed", "error", err)
		return serverError()
	}
	if !valid {
		return badRequest(NewInvalidParamError("email"))
	}

	created, err := c.addAccount.Add(ctx, account.CreateAccountParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		slog.Error("Failed to create account", "error", err)
		return serverError()
	}

	return ok(created)
}
