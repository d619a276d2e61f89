//go:build !windows

package shell

import (
	"os/exec"
	"syscall"
)

// killGroupOnCancel makes context cancellation kill the whole process group.
// pty.Start runs the child in a new session, so its pid is also the group id.
func killGroupOnCancel(cmd *exec.Cmd) {
	cmd.Cancel = func() error {
		if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL); err == nil {
			return nil
		}
		return cmd.Process.Kill()
	}
}
