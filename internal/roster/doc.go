// Package roster holds the in-memory student roster: an ordered collection
// of Student values kept sorted by name on every insert, rendered as a
// fixed-width text table, filtered by average grade, and persisted as an
// XML document.
//
// A Roster is not safe for concurrent use. It is driven by a single
// interactive session, one command at a time.
package roster
