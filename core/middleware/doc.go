// Package middleware groups the Fiber middleware mounted by the start command.
//
// Subpackages:
//
//   - rayid tags each request with an X-Ray-ID header. A UUID sent by the client is
//     kept, anything else is replaced, and the id is stored in the request locals so
//     logger.WithRayID can attach it to handler logs.
//   - auth checks the X-API-Key header against server.api_key with a constant-time
//     compare. Leaving the key empty disables the check, which is how local runs of
//     the convert API work without credentials.
//
// rayid is mounted before the request log so every line carries the id. auth is
// mounted after the swagger routes, so the API docs stay public.
package middleware
