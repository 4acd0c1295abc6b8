package backup

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrExists is returned by Restore when a file it would write already
// exists and force is not set.
var ErrExists = errors.New("file already exists")

// maxEntryBytes bounds a single extracted file.
const maxEntryBytes = 8 << 30

// sqliteSidecars are the journal files SQLite keeps beside a WAL-mode
// database. Left over from the replaced database, they would be replayed
// onto the restored one.
var sqliteSidecars = []string{"-wal", "-shm"}

// Restore extracts the regular files of a Backup archive into dataDir and
// returns their names. Entries are flattened to their base names. Nothing
// is written unless every entry extracts cleanly, and existing files are
// only replaced when force is set. Installing a file removes its stale
// -wal and -shm journals.
func Restore(ctx context.Context, archive io.Reader, dataDir string, force bool) ([]string, error) {
	gr, err := gzip.NewReader(archive)
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer gr.Close()

	if err := os.MkdirAll(dataDir, 0o750); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	staged := map[string]string{} // final path -> temp path
	var names []string
	cleanup := func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}

	tr := tar.NewReader(gr)
	for {
		if err := ctx.Err(); err != nil {
			cleanup()
			return nil, err
		}
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("read archive: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		name := filepath.Base(filepath.Clean(hdr.Name))
		if name == "." || name == ".." || name == string(filepath.Separator) {
			continue
		}
		target := filepath.Join(dataDir, name)

		tmp, err := stage(tr, dataDir, name)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("extract %s: %w", name, err)
		}
		if prev, dup := staged[target]; dup {
			os.Remove(prev)
		} else {
			names = append(names, name)
		}
		staged[target] = tmp
	}

	if !force {
		for target := range staged {
			for _, p := range append([]string{target}, sidecarPaths(target)...) {
				if _, err := os.Stat(p); err == nil {
					cleanup()
					return nil, fmt.Errorf("%w: %s (use force to overwrite)", ErrExists, p)
				}
			}
		}
	}

	archived := make(map[string]bool, len(staged))
	for target := range staged {
		archived[target] = true
	}
	for target, tmp := range staged {
		for _, p := range sidecarPaths(target) {
			if archived[p] {
				continue
			}
			if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
				cleanup()
				return nil, fmt.Errorf("remove stale %s: %w", p, err)
			}
		}
		if err := os.Rename(tmp, target); err != nil {
			cleanup()
			return nil, fmt.Errorf("install %s: %w", target, err)
		}
		delete(staged, target)
	}
	return names, nil
}

// RestoreFile is Restore reading the archive at path.
func RestoreFile(ctx context.Context, path, dataDir string, force bool) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()
	return Restore(ctx, f, dataDir, force)
}

// sidecarPaths lists the SQLite journal paths belonging to target.
func sidecarPaths(target string) []string {
	paths := make([]string, 0, len(sqliteSidecars))
	for _, suffix := range sqliteSidecars {
		paths = append(paths, target+suffix)
	}
	return paths
}

// stage copies one entry into a temp file beside its final location.
func stage(r io.Reader, dir, name string) (string, error) {
	tmp, err := os.CreateTemp(dir, "."+name+".restore-*")
	if err != nil {
		return "", err
	}
	n, err := io.Copy(tmp, io.LimitReader(r, maxEntryBytes+1))
	if err == nil && n > maxEntryBytes {
		err = fmt.Errorf("entry exceeds %d bytes", int64(maxEntryBytes))
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
