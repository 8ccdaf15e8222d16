// Package httpapi serves the lastwalk JSON API: login, character rolls, game
// creation, turns and path recaps.
//
// Every route except login, auth check, logout and health requires an
// authenticated session cookie.
package httpapi
