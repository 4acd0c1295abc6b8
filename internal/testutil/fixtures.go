package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/HerbHall/drivepick/pkg/models"
)

// SampleModels is the reference store listing: eight SATA drives, in the
// order the store publishes them.
var SampleModels = []string{
	`480 ГБ 2.5" SATA накопитель Kingston A400`,
	`500 ГБ 2.5" SATA накопитель Samsung 870 EVO`,
	`480 ГБ 2.5" SATA накопитель ADATA SU650`,
	`240 ГБ 2.5" SATA накопитель ADATA SU650`,
	`250 ГБ 2.5" SATA накопитель Samsung 870 EVO`,
	`256 ГБ 2.5" SATA накопитель Apacer AS350 PANTHER`,
	`480 ГБ 2.5" SATA накопитель WD Green`,
	`500 ГБ 2.5" SATA накопитель WD Red SA500`,
}

// SampleAvailability is the stock vector aligned with SampleModels.
var SampleAvailability = []models.Availability{1, 1, 1, 1, 0, 1, 1, 0}

// SampleManufacturers are the default manufacturer fragments.
var SampleManufacturers = []string{"Intel", "Samsung", "WD"}

// NewDrive returns a Drive with sensible defaults, suitable for test fixtures.
// Override individual fields after creation as needed.
func NewDrive(opts ...func(*models.Drive)) models.Drive {
	d := models.Drive{
		ID:           uuid.New().String(),
		Model:        "test-drive SSD",
		Availability: models.Available,
		Source:       models.SourceManual,
		UpdatedAt:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// WithModel sets the drive model description.
func WithModel(model string) func(*models.Drive) {
	return func(d *models.Drive) { d.Model = model }
}

// WithAvailability sets the drive availability flag.
func WithAvailability(a models.Availability) func(*models.Drive) {
	return func(d *models.Drive) { d.Availability = a }
}

// WithSource sets the drive source.
func WithSource(s models.DriveSource) func(*models.Drive) {
	return func(d *models.Drive) { d.Source = s }
}

// SampleDrives returns the reference listing as Drive values.
func SampleDrives() []models.Drive {
	drives := make([]models.Drive, len(SampleModels))
	for i := range SampleModels {
		drives[i] = NewDrive(WithModel(SampleModels[i]), WithAvailability(SampleAvailability[i]))
		drives[i].Position = i
	}
	return drives
}
