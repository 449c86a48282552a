// Package loader registers the HTTP features of the server.
//
// A Feature names itself, reports whether it is enabled, and mounts its routes in
// Load. The start command registers convert and integrity on a Manager and calls
// LoadAll once, after the middleware chain is in place. Features mount in
// registration order, disabled ones are skipped, and the first Load error aborts
// startup.
package loader
