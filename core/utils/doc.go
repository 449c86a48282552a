// Package utils provides small parsing helpers shared by the log decoders.
// It covers loose conversion of JSON-decoded values and the comma separated and
// two-digit code lists both log formats use for numeric fields.
package utils
