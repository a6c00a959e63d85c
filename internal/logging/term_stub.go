//go:build !linux

package logging

func isTerminalFd(fd uintptr) bool {
	return false
}
