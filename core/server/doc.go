// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures for server settings such as the listen port
// and the secret used to sign and verify bearer tokens.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the account feature and auth middleware to resolve token parameters.
package server
