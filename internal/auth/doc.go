// Package auth provides authentication and authorization for the API.
//
// Users log in with email and password against the local database. Passwords are stored as
// Argon2id hashes. A successful login returns an HS256 signed bearer token whose subject is the
// user id and which carries the admin flag.
//
// # Authorization
//
// Campus administrators may do everything. Club write operations (events, announcements) are
// also open to the presidents of that club. The Service type answers these questions and the
// fiber middleware in this package applies them to routes:
//   - RequireAdmin: only administrators
//   - RequireClubManager: administrators or the president of the club named by a route parameter
//
// Authentication of the request itself happens earlier, in internal/web/middleware/auth, which
// stores the Principal in the fiber locals.
//
// Example usage:
//
//	tokens := auth.NewTokens(cfg.Auth)
//	authService := auth.NewService(db, tokens, memberships)
//
//	res, err := authService.Login(ctx, "ada@campus.local", "secret")
//
//	router.Post("/clubs/:clubId/events",
//	    auth.RequireClubManager(authService, "clubId"),
//	    handler,
//	)
package auth
