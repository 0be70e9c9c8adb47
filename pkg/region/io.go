package region

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Region file names looked up in a project directory, in order.
var ProjectFiles = []string{"region.json", "region.json.zst"}

// Load reads a region document. Paths ending in .zst are zstd-compressed.
func Load(path string) (*Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading region file: %w", err)
	}
	if isCompressed(path) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("creating zstd decoder: %w", err)
		}
		defer dec.Close()
		if data, err = dec.DecodeAll(data, nil); err != nil {
			return nil, fmt.Errorf("decompressing region: %w", err)
		}
	}
	var r Region
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing region JSON: %w", err)
	}
	return &r, nil
}

// Save writes r to path, compressing when the path ends in .zst.
func Save(path string, r *Region) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding region: %w", err)
	}
	if isCompressed(path) {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return fmt.Errorf("creating zstd encoder: %w", err)
		}
		data = enc.EncodeAll(data, nil)
		if err := enc.Close(); err != nil {
			return fmt.Errorf("closing zstd encoder: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing region file: %w", err)
	}
	return nil
}

// FindProjectFile returns the first region file present in projectDir.
func FindProjectFile(projectDir string) (string, error) {
	for _, name := range ProjectFiles {
		path := filepath.Join(projectDir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no region file in %s (looked for %s)", projectDir, strings.Join(ProjectFiles, ", "))
}

func isCompressed(path string) bool {
	return strings.HasSuffix(path, ".zst")
}
