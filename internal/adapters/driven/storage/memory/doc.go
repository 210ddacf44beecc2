// Package memory provides in-memory implementations of the driven storage
// ports. They share the ordering and export semantics of the SQLite store and
// are used by tests and by callers that need a throwaway session.
package memory
