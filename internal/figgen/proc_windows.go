//go:build windows

package figgen

import "os/exec"

// setProcessGroup is a no-op on Windows; KillProcessGroup uses taskkill /T
// to terminate the process tree instead.
func setProcessGroup(cmd *exec.Cmd) {}
