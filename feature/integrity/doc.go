// Package integrity checks the storage layout and the players source that
// conversions depend on.
//
// # Checks Provided
//
//   - Structure: the input folder of every log format and the output folder exist in the bucket.
//   - Outputs: raw logs still awaiting conversion, records whose raw log is gone, and objects not named <id><ext>.
//   - Players: the players file parses, or the player_aliases table has the resolver's columns and holds aliases.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/outputs : Runs outputs check.
//   - GET /integrity/players : Runs players check.
package integrity
