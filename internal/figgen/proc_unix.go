//go:build !windows

package figgen

import (
	"os/exec"
	"syscall"
)

// setProcessGroup places the child in its own process group so a timeout
// kill reaches every descendant.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
