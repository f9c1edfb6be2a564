// Package types holds the values shared between the scanner, the
// serializer and the restorer, plus the filesystem and confirmation
// capabilities they are handed.
package types
