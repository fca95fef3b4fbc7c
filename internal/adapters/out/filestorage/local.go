// Package filestorage keeps uploaded files on the local disk.
package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Local stores files flat under one directory. Paths handed back to callers are
// slash-separated and relative to the process working directory, e.g.
// "uploads/proofs/<id>.jpg".
type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errs.NewValueIsRequiredError("upload dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{dir: filepath.Clean(dir)}, nil
}

// Save writes r to a temporary file first and renames it into place, so a failed
// copy never leaves a partial file under name.
func (l *Local) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := validName(name); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(l.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err = io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close upload: %w", err)
	}

	target := filepath.Join(l.dir, name)
	if err = os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	return filepath.ToSlash(target), nil
}

// Remove deletes a file previously returned by Save.
func (l *Local) Remove(_ context.Context, p string) error {
	name := path.Base(filepath.ToSlash(p))
	if err := validName(name); err != nil {
		return err
	}
	if filepath.Clean(filepath.FromSlash(p)) != filepath.Join(l.dir, name) {
		return errs.NewValueIsInvalidErrorWithCause("path", fmt.Errorf("%q is outside %s", p, l.dir))
	}

	err := os.Remove(filepath.Join(l.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func validName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return errs.NewValueIsInvalidErrorWithCause("file name", fmt.Errorf("%q is not a plain file name", name))
	}
	return nil
}
