// Package config handles configuration management for dotkeeper.
// Values are layered from embedded defaults, the user's config file,
// DOTKEEPER_* environment variables and command-line flags, in that order.
package config
