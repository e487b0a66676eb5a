// Package auth provides the bearer token middleware of the web application.
//
// New reads the "Authorization: Bearer <token>" header, verifies the token and
// stores the resulting auth.Principal in fiber.Locals. Require guards route
// groups that need an authenticated caller.
//
// Usage:
//
//	api.Use(authmiddleware.New(authService))
//	api.Use(authmiddleware.Require)
package auth
