// Package process executes subprocesses with context-based cancellation.
//
// Processes are run in their own process group and receive SIGTERM on
// context cancellation, followed by SIGKILL after a grace period.
package process
