// Package inventory keeps the persisted drive catalog: manually entered,
// CSV-imported and locally discovered drives, in a stable position order.
package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/HerbHall/drivepick/internal/store"
	"github.com/HerbHall/drivepick/pkg/models"
)

// ErrNotFound is returned when no drive has the requested ID.
var ErrNotFound = errors.New("drive not found")

// Repository provides access to the drive inventory.
type Repository interface {
	// Create inserts a drive at the end of the catalog. If drive.ID is
	// empty, a UUID is generated.
	Create(ctx context.Context, drive *models.Drive) error

	// Get returns a single drive by ID.
	Get(ctx context.Context, id string) (*models.Drive, error)

	// List returns every drive in position order.
	List(ctx context.Context) ([]models.Drive, error)

	// SetAvailability updates the stock flag of one drive.
	SetAvailability(ctx context.Context, id string, a models.Availability) error

	// Delete removes a drive by ID.
	Delete(ctx context.Context, id string) error

	// ReplaceSource atomically replaces every drive from source with drives,
	// appended after the remaining rows in the given order.
	ReplaceSource(ctx context.Context, source models.DriveSource, drives []models.Drive) error

	// Drives returns the catalog for selection. It is List under the name
	// selector.Source expects.
	Drives(ctx context.Context) ([]models.Drive, error)
}

// Compile-time interface guard.
var _ Repository = (*SQLiteRepository)(nil)

// migrations creates the inventory_drives table.
var migrations = []store.Migration{
	{
		Version:     1,
		Description: "create inventory_drives",
		Up: func(tx *sql.Tx) error {
			stmts := []string{
				`CREATE TABLE inventory_drives (
					id           TEXT PRIMARY KEY,
					model        TEXT NOT NULL,
					availability INTEGER NOT NULL DEFAULT 0,
					position     INTEGER NOT NULL,
					source       TEXT NOT NULL DEFAULT 'manual',
					updated_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_inventory_drives_position ON inventory_drives(position)`,
				`CREATE INDEX idx_inventory_drives_source ON inventory_drives(source)`,
			}
			for _, stmt := range stmts {
				if _, err := tx.Exec(stmt); err != nil {
					return err
				}
			}
			return nil
		},
	},
}

// SQLiteRepository implements Repository on the inventory_drives table.
type SQLiteRepository struct {
	store store.Store
	now   func() time.Time
}

// NewSQLiteRepository applies the inventory migrations and returns a
// repository. now supplies update timestamps; nil means time.Now.
func NewSQLiteRepository(ctx context.Context, s store.Store, now func() time.Time) (*SQLiteRepository, error) {
	if err := s.Migrate(ctx, "inventory", migrations); err != nil {
		return nil, fmt.Errorf("inventory migrations: %w", err)
	}
	if now == nil {
		now = time.Now
	}
	return &SQLiteRepository{store: s, now: now}, nil
}

// driveColumns is the shared column list for drive queries.
const driveColumns = `id, model, availability, position, source, updated_at`

func (r *SQLiteRepository) Create(ctx context.Context, drive *models.Drive) error {
	if drive.ID == "" {
		drive.ID = uuid.New().String()
	}
	if drive.Source == "" {
		drive.Source = models.SourceManual
	}
	drive.UpdatedAt = r.now().UTC()

	err := r.store.Tx(ctx, func(tx *sql.Tx) error {
		pos, err := nextPosition(ctx, tx)
		if err != nil {
			return err
		}
		drive.Position = pos
		return insertDrive(ctx, tx, drive)
	})
	if err != nil {
		return fmt.Errorf("create drive: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*models.Drive, error) {
	row := r.store.DB().QueryRowContext(ctx,
		`SELECT `+driveColumns+` FROM inventory_drives WHERE id = ?`, id)
	d, err := scanDrive(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get drive %q: %w", id, err)
	}
	return &d, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Drive, error) {
	rows, err := r.store.DB().QueryContext(ctx,
		`SELECT `+driveColumns+` FROM inventory_drives ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("list drives: %w", err)
	}
	defer rows.Close()

	drives := []models.Drive{}
	for rows.Next() {
		d, err := scanDrive(rows)
		if err != nil {
			return nil, fmt.Errorf("scan drive: %w", err)
		}
		drives = append(drives, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate drives: %w", err)
	}
	return drives, nil
}

func (r *SQLiteRepository) Drives(ctx context.Context) ([]models.Drive, error) {
	return r.List(ctx)
}

func (r *SQLiteRepository) SetAvailability(ctx context.Context, id string, a models.Availability) error {
	res, err := r.store.DB().ExecContext(ctx,
		`UPDATE inventory_drives SET availability = ?, updated_at = ? WHERE id = ?`,
		int(a), r.now().UTC(), id)
	if err != nil {
		return fmt.Errorf("set availability %q: %w", id, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.store.DB().ExecContext(ctx,
		`DELETE FROM inventory_drives WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete drive %q: %w", id, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) ReplaceSource(ctx context.Context, source models.DriveSource, drives []models.Drive) error {
	now := r.now().UTC()
	err := r.store.Tx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM inventory_drives WHERE source = ?`, string(source)); err != nil {
			return err
		}
		pos, err := nextPosition(ctx, tx)
		if err != nil {
			return err
		}
		for i := range drives {
			d := drives[i]
			if d.ID == "" {
				d.ID = uuid.New().String()
			}
			d.Source = source
			d.Position = pos + i
			d.UpdatedAt = now
			if err := insertDrive(ctx, tx, &d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace %s drives: %w", source, err)
	}
	return nil
}

func nextPosition(ctx context.Context, tx *sql.Tx) (int, error) {
	var pos int
	err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position) + 1, 0) FROM inventory_drives`).Scan(&pos)
	if err != nil {
		return 0, fmt.Errorf("next position: %w", err)
	}
	return pos, nil
}

func insertDrive(ctx context.Context, tx *sql.Tx, d *models.Drive) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO inventory_drives (`+driveColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)`,
		d.ID, d.Model, int(d.Availability), d.Position, string(d.Source), d.UpdatedAt,
	)
	return err
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDrive(row rowScanner) (models.Drive, error) {
	var d models.Drive
	var availability int
	var source string
	if err := row.Scan(&d.ID, &d.Model, &availability, &d.Position, &source, &d.UpdatedAt); err != nil {
		return models.Drive{}, err
	}
	d.Availability = models.Availability(availability)
	d.Source = models.DriveSource(source)
	return d, nil
}
