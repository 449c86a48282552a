// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber application; this package only describes how it
// listens: the port, the optional API key and the upload size limit.
package server
