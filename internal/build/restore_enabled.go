//go:build !norestore

package build

// RestoreSupported reports whether the binary may run dependency restores.
// Building with the norestore tag removes the capability.
const RestoreSupported = true
