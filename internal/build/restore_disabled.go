//go:build norestore

package build

// RestoreSupported reports whether the binary may run dependency restores.
const RestoreSupported = false
