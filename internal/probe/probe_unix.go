//go:build !windows

package probe

import "syscall"

func availableBytes(path string) (uint64, error) {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return 0, err
	}
	// Blocks available to unprivileged users * block size
	return uint64(stat.Bavail) * uint64(stat.Bsize), nil
}
