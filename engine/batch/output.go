package batch

import (
	"os"
	"path/filepath"
)

// write stores doc at path. Data is written to a temporary file first and
// then renamed, thus readers never see partial files. Existing files are
// replaced. If writing fails because the output directory has gone, the
// error wraps ErrOutputDir.
func (d *Driver) write(path string, doc []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return d.writeError(err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(doc); err != nil {
		tmp.Close()
		return d.writeError(err)
	}
	if err = tmp.Close(); err != nil {
		return d.writeError(err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return d.writeError(err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return d.writeError(err)
	}
	return nil
}

// writeError checks if a write error is caused by a missing output directory.
func (d *Driver) writeError(err error) error {
	if dirErr := d.checkOutputDir(); dirErr != nil {
		return dirErr
	}
	return err
}
