package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/ctxlog"
)

var (
	ErrReportExists = errors.New("report already exists")
	ErrBadName      = errors.New("bad report name")
)

type localStorage struct {
	rootDir string
}

var _ Storage = (*localStorage)(nil)

func NewLocalStorage(saveDir string) (Storage, error) {
	if err := os.MkdirAll(saveDir, 0o700); err != nil {
		return nil, err
	}
	return &localStorage{rootDir: saveDir}, nil
}

// NewTmpStorage keeps reports in a new directory under os.TempDir.
func NewTmpStorage() (Storage, error) {
	dir, err := os.MkdirTemp("", "aoc2023-reports-")
	if err != nil {
		return nil, fmt.Errorf("cannot create temp report dir: %w", err)
	}
	return &localStorage{rootDir: dir}, nil
}

// NewName returns a unique report name for one run of a puzzle.
func NewName(day string) string {
	return fmt.Sprintf("%s-%s.log", day, uuid.NewString())
}

func (ls *localStorage) Dir() string {
	return ls.rootDir
}

// reportPath maps name into rootDir. Names leaving rootDir are rejected.
func (ls *localStorage) reportPath(name string) (string, error) {
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return filepath.Join(ls.rootDir, name), nil
}

func (ls *localStorage) StoreReport(ctx context.Context, name string, r io.Reader) error {
	p, err := ls.reportPath(name)
	if err != nil {
		return err
	}
	switch _, err := os.Stat(p); {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrReportExists, name)
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("cannot stat report %s: %w", name, err)
	}

	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return fmt.Errorf("cannot create report dir for %s: %w", name, err)
	}
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrReportExists, name)
		}
		return fmt.Errorf("cannot create report %s: %w", name, err)
	}

	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("cannot write report %s: %w", name, err)
	}
	ctxlog.FromContext(ctx).DebugContext(ctx, "report stored", "path", p, "bytes", n)
	return nil
}

func (ls *localStorage) RetrieveReport(ctx context.Context, name string, w io.Writer) error {
	p, err := ls.reportPath(name)
	if err != nil {
		return err
	}
	f, err := os.Open(p)
	if err != nil {
		return fmt.Errorf("cannot open report %s: %w", name, err)
	}
	defer f.Close()

	n, err := io.Copy(w, f)
	if err != nil {
		return fmt.Errorf("cannot read report %s: %w", name, err)
	}
	ctxlog.FromContext(ctx).DebugContext(ctx, "report retrieved", "path", p, "bytes", n)
	return nil
}

func (ls *localStorage) DeleteReport(ctx context.Context, name string) error {
	p, err := ls.reportPath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		return fmt.Errorf("cannot delete report %s: %w", name, err)
	}
	ctxlog.FromContext(ctx).DebugContext(ctx, "report deleted", "path", p)
	return nil
}
