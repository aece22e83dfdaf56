package export

import (
	"archive/tar"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/ulikunitz/xz"

	"github.com/hueforge/hueforge/internal/colour"
)

// WriteBundle writes every export format for the palette into an
// xz-compressed tar archive at path.
func WriteBundle(path string, p *colour.Palette, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	out, err := os.Create(path) // #nosec G304 - User-specified output path, intended to be written
	if err != nil {
		return fmt.Errorf("failed to create bundle file: %w", err)
	}
	defer out.Close()

	xzw, err := xz.NewWriter(out)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}
	tw := tar.NewWriter(xzw)

	now := time.Now()
	for _, format := range Formats() {
		data, err := Render(p, format)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", format, err)
		}

		header := &tar.Header{
			Name:    format.Filename(),
			Mode:    0o644,
			Size:    int64(len(data)),
			ModTime: now,
		}
		if err := tw.WriteHeader(header); err != nil {
			return fmt.Errorf("failed to write tar header for %s: %w", format.Filename(), err)
		}
		if _, err := tw.Write(data); err != nil {
			return fmt.Errorf("failed to write %s to bundle: %w", format.Filename(), err)
		}
		logger.Debug("added bundle entry", "name", format.Filename(), "bytes", len(data))
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finalise tar archive: %w", err)
	}
	if err := xzw.Close(); err != nil {
		return fmt.Errorf("failed to finalise xz stream: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close bundle file: %w", err)
	}

	logger.Debug("bundle written", "path", path)
	return nil
}
