// Package account registers users and logs them in.
//
// Passwords are stored as bcrypt hashes. A successful login returns an HS256
// token whose subject is the account id; the auth middleware turns it back
// into the user id every inventory operation is scoped to. The feature is
// disabled when no JWT secret is configured.
package account
