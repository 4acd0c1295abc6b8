package inventory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/HerbHall/drivepick/pkg/models"
)

// csvHeaders returns the CSV column headers.
func csvHeaders() []string {
	return []string{"model", "available"}
}

// ReadCSV parses a drive listing with a model,available header. Rows keep
// their file order and model text exactly as written. Errors name the
// offending line.
func ReadCSV(r io.Reader) ([]models.Drive, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeaders())
	// Model descriptions carry inch marks (2.5") outside quoted fields.
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("csv: missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	for i, want := range csvHeaders() {
		if strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff")) != want {
			return nil, fmt.Errorf("csv header: column %d is %q, want %q", i+1, header[i], want)
		}
	}

	drives := []models.Drive{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}
		line, _ := cr.FieldPos(0)

		d, err := csvRowToDrive(row)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		drives = append(drives, d)
	}
	return drives, nil
}

// WriteCSV writes drives in the format ReadCSV accepts.
func WriteCSV(w io.Writer, drives []models.Drive) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range drives {
		if err := cw.Write(driveToCSVRow(drives[i])); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// driveToCSVRow converts a drive to a CSV row (matching csvHeaders order).
func driveToCSVRow(d models.Drive) []string {
	return []string{d.Model, strconv.Itoa(int(d.Availability))}
}

// csvRowToDrive parses a CSV row into a Drive with source csv.
func csvRowToDrive(row []string) (models.Drive, error) {
	model := row[0]
	if strings.TrimSpace(model) == "" {
		return models.Drive{}, errors.New("empty model")
	}
	a, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return models.Drive{}, fmt.Errorf("invalid available %q: %w", row[1], err)
	}
	return models.Drive{
		Model:        model,
		Availability: models.Availability(a),
		Source:       models.SourceCSV,
	}, nil
}
