// Package sqlite implements storage.GameStore on SQLite.
//
// Attributes and inventory are stored as JSON columns; positions as paired
// REAL columns. Timestamps are Unix milliseconds in UTC.
package sqlite
