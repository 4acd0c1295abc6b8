// Package backup archives the DrivePick inventory database and config file
// as tar.gz, and restores them.
package backup

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver
)

// ErrNoDatabase is returned by Backup when the database file is missing.
var ErrNoDatabase = errors.New("database file not found")

// Backup writes a tar.gz archive of the database at dbPath, plus configPath
// when it names an existing file, to out. The WAL is checkpointed first so
// the archived file holds every committed write.
func Backup(ctx context.Context, dbPath, configPath string, out io.Writer) (err error) {
	if _, statErr := os.Stat(dbPath); statErr != nil {
		return fmt.Errorf("%w: %s", ErrNoDatabase, dbPath)
	}

	if err := checkpointWAL(ctx, dbPath); err != nil {
		return fmt.Errorf("checkpoint wal: %w", err)
	}

	gw := gzip.NewWriter(out)
	tw := tar.NewWriter(gw)
	defer func() {
		// Close in order; report the first failure if nothing else failed.
		if cerr := tw.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close tar: %w", cerr)
		}
		if cerr := gw.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close gzip: %w", cerr)
		}
	}()

	if err := addFile(tw, dbPath); err != nil {
		return fmt.Errorf("archive database: %w", err)
	}

	if configPath != "" {
		if _, statErr := os.Stat(configPath); statErr == nil {
			if err := addFile(tw, configPath); err != nil {
				return fmt.Errorf("archive config: %w", err)
			}
		}
	}
	return nil
}

// BackupFile is Backup into a newly created file at outputPath. A failed
// backup removes the partial file.
func BackupFile(ctx context.Context, dbPath, configPath, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outputPath, err)
	}
	if err := Backup(ctx, dbPath, configPath, f); err != nil {
		f.Close()
		os.Remove(outputPath)
		return err
	}
	return f.Close()
}

func checkpointWAL(ctx context.Context, dbPath string) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)")
	return err
}

// addFile stores path in the archive under its base name.
func addFile(tw *tar.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	hdr.Name = filepath.Base(path)

	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	_, err = io.Copy(tw, f)
	return err
}
