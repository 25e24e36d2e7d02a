// Package report keeps the debug logs captured while solving puzzles.
package report

import (
	"context"
	"io"
)

// TmpDir given as the debug dir selects a fresh directory under os.TempDir.
const TmpDir = "@tmp"

type Storage interface {
	// Dir is the directory the reports are kept in.
	Dir() string
	StoreReport(context.Context, string, io.Reader) error
	RetrieveReport(context.Context, string, io.Writer) error
	DeleteReport(context.Context, string) error
}

// Open returns the storage for dir, or a temporary one when dir is TmpDir.
func Open(dir string) (Storage, error) {
	if dir == TmpDir {
		return NewTmpStorage()
	}
	return NewLocalStorage(dir)
}
