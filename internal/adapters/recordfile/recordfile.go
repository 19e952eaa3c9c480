// Package recordfile reads and writes the flat JSON record files the
// pipelines consume. The whole file is read into memory at once; inputs are
// small batch files, not streams.
package recordfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/okian/medbatch/internal/domain/model"
)

// File permission constants.
const (
	recordFilePermission = 0600
	recordDirPermission  = 0750
)

// LoadPatients reads a JSON array of raw patient records from path.
// A missing file returns an error wrapping ErrNotFound; callers treat that
// as fatal for the run.
func LoadPatients(ctx context.Context, path string) ([]model.RawPatient, error) {
	var batch []model.RawPatient
	if err := load(ctx, path, &batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// LoadDosageRequests reads a JSON array of dosage requests from path.
func LoadDosageRequests(ctx context.Context, path string) ([]model.DosageRequest, error) {
	var batch []model.DosageRequest
	if err := load(ctx, path, &batch); err != nil {
		return nil, err
	}
	return batch, nil
}

func load(ctx context.Context, path string, out any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from config or flags
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return nil
}

// Write marshals records as indented JSON and writes them to path, creating
// parent directories as needed. Used by the record seeder.
func Write(ctx context.Context, path string, records any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, recordDirPermission); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, recordFilePermission); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
