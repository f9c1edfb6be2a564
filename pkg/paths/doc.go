// Package paths provides the path rules dotkeeper relies on.
//
// It handles:
//
//   - Home directory discovery
//   - The portable home placeholder ("~") used in record files
//   - Path-aware containment checks (is a path inside the store?)
//   - Resolution of the store link into the store directory
//
// # Placeholder rules
//
// Only a whole leading home directory is rewritten. Given a home of
// /home/ana:
//
//	Portable("/home/ana/.vimrc", home)    // "~/.vimrc"
//	Portable("/home/anabel/.vimrc", home) // unchanged
//	Portable("/srv/~/x", home)            // unchanged
//	Expand("~/.vimrc", home)              // "/home/ana/.vimrc"
//	Expand("/srv/~/x", home)              // unchanged
//
// A "~" anywhere but the first path segment is left alone in both
// directions, so a literal "~" inside a path survives a round trip.
package paths
