// Package env keeps names of environment variables with special
// significance to Cedar.
package env

// Environment variables Cedar reads.
const (
	HOME        = "HOME"
	PATH        = "PATH"
	PATHEXT     = "PATHEXT"
	CedarHistDB = "CEDAR_HISTORY_DB"
)
