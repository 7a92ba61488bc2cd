//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// killTree force-kills pid and its children with taskkill /F /T.
func killTree(pid int) {
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run() // #nosec G204 -- pid is numeric
}
