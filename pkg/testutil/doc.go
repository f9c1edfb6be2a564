// Package testutil provides utilities for testing dotkeeper components.
//
// Key components:
//   - Environment: an isolated home directory, store and store link inside
//     t.TempDir, with HOME and the XDG variables pointed at it
//
// Usage guidelines:
//   - Build every fixture inline in the test through the Environment helpers
//   - Compare paths against Environment fields; they are already resolved
//     (macOS temp dirs live behind /var -> /private/var)
package testutil
