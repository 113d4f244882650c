// Package signup implements the account signup endpoint.
//
// The Controller validates a parsed signup request, consults an email
// validator, delegates creation to the account use case, and maps every
// outcome to a structured response: 400 with a field-specific error for
// client defects, 500 with a generic error for collaborator failures, and
// 200 with the created account otherwise.
//
// # Basic Usage
//
//	controller := signup.NewController(emailValidator, accountService)
//	handle := signup.NewHandle(controller)
//
//	r := chi.NewRouter()
//	r.Route("/api/signup", handle.RegisterRoutes)
package signup
