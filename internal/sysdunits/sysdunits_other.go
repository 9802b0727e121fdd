//go:build !linux

package sysdunits

import (
	"context"

	"github.com/psdsmon/psdsmon/internal/models"
)

// Summarizer is a stub off Linux.
type Summarizer struct{}

// NewSummarizer reports that systemd is unavailable on this platform.
func NewSummarizer() (*Summarizer, error) {
	return nil, ErrUnsupported
}

// Summary always fails off Linux.
func (s *Summarizer) Summary(ctx context.Context) (*models.ServiceSummary, error) {
	return nil, ErrUnsupported
}

// Enrich is a no-op off Linux.
func (s *Summarizer) Enrich(snap *models.SystemSnapshot) {}
