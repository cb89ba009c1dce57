// Package fileio reads and writes whole files in one call.
//
// Get and Put move raw bytes, GetText and PutText move UTF-8 text, and Lines
// iterates a file line by line. Every call opens and closes its own file
// descriptor; nothing is cached or shared between calls.
package fileio
