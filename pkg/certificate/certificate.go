package certificate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/rs/zerolog"
)

const (
	canvasWidth  = 600
	canvasHeight = 400
)

// Config controls where certificate artifacts are written.
type Config struct {
	OutputDir string
}

// Service implements the CertificateIssuer interface by rendering PNG
// certificates onto a fixed-size canvas.
type Service struct {
	outputDir string
	logger    zerolog.Logger
}

// New constructs a certificate renderer.
func New(cfg Config, logger zerolog.Logger) (*Service, error) {
	if cfg.OutputDir == "" {
		return nil, fmt.Errorf("certificate output dir must be provided")
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create certificate dir: %w", err)
	}

	return &Service{
		outputDir: cfg.OutputDir,
		logger:    logger.With().Str("component", "certificate").Logger(),
	}, nil
}

// Issue renders a certificate for the user and returns the artifact filename.
func (s *Service) Issue(ctx context.Context, userID uint, userName string, totalHours float64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dc := gg.NewContext(canvasWidth, canvasHeight)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored("Certificate of Completion", canvasWidth/2, 150, 0.5, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("Awarded to: %s", userName), canvasWidth/2, 200, 0.5, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("Total Hours: %g", totalHours), canvasWidth/2, 250, 0.5, 0.5)

	filename := fmt.Sprintf("%d_certificate.png", userID)
	if err := dc.SavePNG(filepath.Join(s.outputDir, filename)); err != nil {
		return "", fmt.Errorf("failed to write certificate: %w", err)
	}

	s.logger.Info().Uint("user_id", userID).Float64("total_hours", totalHours).Msg("certificate issued")

	return filename, nil
}
