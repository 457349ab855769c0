package probe

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// Status classifies the outcome of a data directory check.
type Status int

const (
	StatusOK Status = iota
	StatusError
)

// Result describes a completed free-space check for a candidate data
// directory. AvailableBytes is measured at the nearest existing ancestor
// of the checked path, since querying space on a path that does not exist
// yet fails on most filesystems.
type Result struct {
	Status         Status
	Message        string
	AvailableBytes uint64
}

// Probe inspects path as a candidate data directory and reports whether it
// is usable, how it would be used (existing directory vs. new one), and how
// much space is available on the volume that would hold it.
//
// Probe never returns an error: every filesystem failure is folded into a
// StatusError result. When the space query on the ancestor fails, that
// failure wins even if the target itself exists as a non-directory; the
// non-directory refinement only runs once the ancestor is known queryable.
func Probe(path string) Result {
	anchor := nearestExistingAncestor(path)

	available, err := availableBytes(anchor)
	if err != nil {
		return Result{
			Status:  StatusError,
			Message: fmt.Sprintf("cannot create data directory here: %v", err),
		}
	}

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return Result{
			Status:         StatusOK,
			Message:        "directory already exists; add a subdirectory name if you intend to create a new directory here",
			AvailableBytes: available,
		}
	case err == nil:
		return Result{
			Status:  StatusError,
			Message: "path already exists, and is not a directory",
		}
	// ENOTDIR means a path component is a regular file; the directory does
	// not exist there either, creation will simply fail later.
	case os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR):
		return Result{
			Status:         StatusOK,
			Message:        "a new data directory will be created",
			AvailableBytes: available,
		}
	default:
		return Result{
			Status:  StatusError,
			Message: fmt.Sprintf("cannot inspect path: %v", err),
		}
	}
}

// nearestExistingAncestor walks from path up through its parents until it
// finds one that exists. The filesystem root is the final fallback.
func nearestExistingAncestor(path string) string {
	dir := filepath.Clean(path)
	for {
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
