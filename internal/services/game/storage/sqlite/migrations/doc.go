// Package migrations embeds the SQL schema history for the game store.
package migrations
