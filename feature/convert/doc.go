// Package convert turns raw match logs into canonical records.
//
// The Service dispatches a log to the decoder of its format, reads raw logs from and
// writes canonical JSON to object storage, and converts whole prefixes concurrently.
//
// # Storage Layout
//
//	<input_prefix>/mjlog/<id>.xml    Format A logs
//	<input_prefix>/mjson/<id>.json   Format B logs
//	<output_prefix>/<id>.json        canonical records
//
// # Batch Conversion
//
// ConvertBatch converts every input of a format on a bounded worker pool. Matches with
// an existing record are skipped unless forced. A failing match is logged and listed
// in the BatchReport; it never aborts the batch.
//
// # Cross-check
//
// A match logged in both formats must decode to the same record. Crosscheck compares
// the stored logs of both formats with core/reconcile.
//
// # HTTP
//
//	POST /convert/:format           convert the request body
//	POST /convert/:format/batch     convert all stored logs of a format
//	POST /convert/:format/:id       convert one stored log
//	GET  /crosscheck                compare all stored matches
//	GET  /crosscheck/:id            compare one stored match
package convert
