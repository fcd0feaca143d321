// Package storage declares persistence interfaces for web-owned cache data.
//
// The web cache is a derived read optimization. The remote todos API stays
// the source of truth.
package storage
