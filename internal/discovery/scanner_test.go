package discovery

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/HerbHall/drivepick/internal/testutil"
	"github.com/HerbHall/drivepick/pkg/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fakeSysfs() fstest.MapFS {
	return fstest.MapFS{
		"sys/block/loop0/device/model":   {Data: []byte("loopback\n")},
		"sys/block/nvme0n1/device/model": {Data: []byte("Samsung SSD 980 PRO 1TB                 \n")},
		"sys/block/sda/device/model":     {Data: []byte("WDC WDS500G2B0A\n")},
		"sys/block/sdb/device/model":     {Data: []byte("   \n")},
		"sys/block/sdc/size":             {Data: []byte("0\n")},
		"sys/block/zram0/size":           {Data: []byte("0\n")},
	}
}

func TestScanner_Scan(t *testing.T) {
	s := NewScannerFS(fakeSysfs(), testutil.Logger())

	drives, err := s.Scan(context.Background())
	require.NoError(t, err)
	require.Len(t, drives, 4)

	want := []struct {
		id    string
		model string
	}{
		{"sysfs-nvme0n1", "Samsung SSD 980 PRO 1TB"},
		{"sysfs-sda", "WDC WDS500G2B0A"},
		{"sysfs-sdb", UnknownModel},
		{"sysfs-sdc", UnknownModel},
	}
	for i, w := range want {
		assert.Equal(t, w.id, drives[i].ID)
		assert.Equal(t, w.model, drives[i].Model)
		assert.Equal(t, models.Available, drives[i].Availability)
		assert.Equal(t, models.SourceSysfs, drives[i].Source)
		assert.Equal(t, i, drives[i].Position)
	}
}

func TestScanner_NoDrives(t *testing.T) {
	s := NewScannerFS(fstest.MapFS{
		"sys/block/loop0/size": {Data: []byte("0")},
	}, testutil.Logger())

	drives, err := s.Scan(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, drives)
	assert.Empty(t, drives)
}

func TestScanner_MissingSysfs(t *testing.T) {
	s := NewScannerFS(fstest.MapFS{}, testutil.Logger())

	_, err := s.Scan(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sys/block")
}

func TestScanner_CanceledContext(t *testing.T) {
	s := NewScannerFS(fakeSysfs(), testutil.Logger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Scan(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScanner_DiskRoot(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "sys", "block", "sda", "device")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model"), []byte("INTEL SSDSC2KB480G8\n"), 0o600))

	s := NewScanner(root, testutil.Logger())
	drives, err := s.Drives(context.Background())
	require.NoError(t, err)
	require.Len(t, drives, 1)
	assert.Equal(t, "INTEL SSDSC2KB480G8", drives[0].Model)
}
