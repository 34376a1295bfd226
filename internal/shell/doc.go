// Package shell implements the line-oriented command loop that drives a
// roster: it reads commands, dispatches them to the roster, prints results,
// and reports failures without ending the session.
package shell
