// Package web owns the browser-facing todo list.
//
// It mirrors a remote todos REST collection into server-rendered pages and a
// small JSON view, forwarding every mutation upstream and reflecting the
// result back. The process keeps no authoritative state; the optional SQLite
// cache only holds derived list snapshots.
package web
