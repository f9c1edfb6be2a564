// Package filesystem provides filesystem implementations for dotkeeper.
//
// NewOS backs the types.FS interface used by the scanner and restorer.
// The record file goes through afero so it can live on an in-memory
// filesystem in tests; CheckAccess answers access(2) questions for either.
package filesystem
