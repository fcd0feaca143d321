// Package sqlite provides the web cache persistence adapter backed by SQLite.
package sqlite
