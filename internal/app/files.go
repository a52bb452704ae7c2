package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dshills/modeline/internal/engine/buffer"
)

// readFile loads path into a buffer. A missing file yields an empty buffer.
func readFile(path string) (*buffer.Lines, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return buffer.New(), nil
	}
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}
	defer f.Close()

	buf, err := buffer.FromReader(f)
	if err != nil {
		return nil, NewOperationError("read", path, err)
	}
	return buf, nil
}

// writeFile replaces path with text through a temporary file in the same
// directory. An existing file keeps its permissions.
func writeFile(path, text string) error {
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// writeActive saves the active frame to its path.
func (app *Application) writeActive() error {
	f, err := app.frames.Active()
	if err != nil {
		return err
	}
	if f.Path == "" {
		return ErrNoFileName
	}
	if err := writeFile(f.Path, f.Buffer.Text()); err != nil {
		return NewOperationError("write", f.Path, err)
	}
	app.logger.Info("wrote %s", f.Path)
	return nil
}
