package ingest

import (
	"os"
	"path/filepath"
)

// writeAtomic writes data next to path and renames it into place, so readers
// see either the previous bundle or the complete new one.
func writeAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ioError("create dir", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return ioError("create temp", dir, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return ioError("write", tmpName, err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return ioError("chmod", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return ioError("close", tmpName, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return ioError("rename", path, err)
	}
	return nil
}
