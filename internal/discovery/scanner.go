// Package discovery finds the block devices attached to the local machine
// by reading the Linux sysfs tree.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/HerbHall/drivepick/pkg/models"
)

// UnknownModel is reported for devices without a readable model file.
const UnknownModel = "N/A"

// blockDir is the sysfs directory listing block devices, relative to root.
const blockDir = "sys/block"

// devicePrefixes select SATA/SCSI disks and NVMe namespaces.
var devicePrefixes = []string{"sd", "nvme"}

// Scanner lists local drives from sysfs.
type Scanner struct {
	fsys   fs.FS
	logger *zap.Logger
}

// NewScanner creates a Scanner reading sysfs below root ("/" on a live
// system).
func NewScanner(root string, logger *zap.Logger) *Scanner {
	return NewScannerFS(os.DirFS(root), logger)
}

// NewScannerFS creates a Scanner over an arbitrary file system laid out
// like the filesystem root.
func NewScannerFS(fsys fs.FS, logger *zap.Logger) *Scanner {
	return &Scanner{fsys: fsys, logger: logger.Named("discovery")}
}

// Scan returns one Available drive per sd* or nvme* block device, in
// device name order. Positions follow that order.
func (s *Scanner) Scan(ctx context.Context) ([]models.Drive, error) {
	entries, err := fs.ReadDir(s.fsys, blockDir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", blockDir, err)
	}

	drives := []models.Drive{}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := e.Name()
		if !isDrive(name) {
			continue
		}

		model := s.readModel(name)
		drives = append(drives, models.Drive{
			ID:           "sysfs-" + name,
			Model:        model,
			Availability: models.Available,
			Position:     len(drives),
			Source:       models.SourceSysfs,
		})
		s.logger.Debug("drive found", zap.String("device", name), zap.String("model", model))
	}
	return drives, nil
}

// Drives implements selector.Source by scanning on every call.
func (s *Scanner) Drives(ctx context.Context) ([]models.Drive, error) {
	return s.Scan(ctx)
}

func (s *Scanner) readModel(device string) string {
	data, err := fs.ReadFile(s.fsys, path.Join(blockDir, device, "device", "model"))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("read drive model", zap.String("device", device), zap.Error(err))
		}
		return UnknownModel
	}
	model := strings.TrimSpace(string(data))
	if model == "" {
		return UnknownModel
	}
	return model
}

func isDrive(name string) bool {
	for _, p := range devicePrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
