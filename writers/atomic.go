package writers

import (
	"io/fs"
	"os"
	"path/filepath"
)

// AtomicFileWriter defers opening until the first write, writes to a
// temporary file next to the destination, and renames it into place on
// Close. Abort removes the temporary file instead, so a failed run leaves no
// partial output behind.
type AtomicFileWriter struct {
	dest  string
	perms fs.FileMode
	tmp   *os.File
}

// NewAtomicFileWriter creates a writer for dest. Nothing touches the
// filesystem until the first Write call.
func NewAtomicFileWriter(dest string, perms fs.FileMode) *AtomicFileWriter {
	return &AtomicFileWriter{dest: dest, perms: perms}
}

func (w *AtomicFileWriter) Write(p []byte) (int, error) {
	if w.tmp == nil {
		f, err := os.CreateTemp(filepath.Dir(w.dest), "."+filepath.Base(w.dest)+".*")
		if err != nil {
			return 0, err
		}
		if err := f.Chmod(w.perms); err != nil {
			f.Close()
			os.Remove(f.Name())
			return 0, err
		}
		w.tmp = f
	}
	return w.tmp.Write(p)
}

// Close moves the temporary file to the destination. Closing a writer that
// was never written to is a no-op.
func (w *AtomicFileWriter) Close() error {
	if w.tmp == nil {
		return nil
	}
	name := w.tmp.Name()
	err := w.tmp.Close()
	w.tmp = nil
	if err != nil {
		os.Remove(name)
		return err
	}
	return os.Rename(name, w.dest)
}

// Abort discards the temporary file, leaving the destination untouched.
func (w *AtomicFileWriter) Abort() error {
	if w.tmp == nil {
		return nil
	}
	name := w.tmp.Name()
	err := w.tmp.Close()
	w.tmp = nil
	if rmErr := os.Remove(name); err == nil {
		err = rmErr
	}
	return err
}
