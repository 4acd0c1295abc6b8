package models

import "time"

// Availability is the stock flag attached to a catalog entry.
// Only the value 1 marks an entry as eligible for selection; every other
// value, including 2 or -1, counts as not available.
type Availability int

const (
	Unavailable Availability = 0
	Available   Availability = 1
)

// IsAvailable reports whether a equals the Available marker.
func (a Availability) IsAvailable() bool {
	return a == Available
}

// DriveSource records where a drive entry came from.
type DriveSource string

const (
	SourceManual  DriveSource = "manual"
	SourceCSV     DriveSource = "csv"
	SourceSysfs   DriveSource = "sysfs"
	SourceBuiltin DriveSource = "builtin"
)

// Drive is a single catalog entry. Model is the unstructured description
// ("480 ГБ 2.5\" SATA накопитель WD Green"); no fields are parsed out of it.
type Drive struct {
	ID           string       `json:"id"`
	Model        string       `json:"model"`
	Availability Availability `json:"available"`
	Position     int          `json:"position"`
	Source       DriveSource  `json:"source"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Columns splits drives into the parallel model and availability slices
// consumed by the selector. Order is preserved.
func Columns(drives []Drive) ([]string, []Availability) {
	catalog := make([]string, len(drives))
	availability := make([]Availability, len(drives))
	for i := range drives {
		catalog[i] = drives[i].Model
		availability[i] = drives[i].Availability
	}
	return catalog, availability
}
