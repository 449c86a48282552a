// Package players resolves log nicknames to canonical player names.
//
// Two resolvers implement canon.Resolver:
//
//   - FileResolver reads a players JSON file ([{"nickname": ..., "name": ...}]).
//   - DBResolver queries the player_aliases table through GORM and keeps recent
//     lookups in an LRU cache.
//
// Import loads a players file into the table, so a deployment can start from the file
// and move to the database without editing entries twice.
package players
