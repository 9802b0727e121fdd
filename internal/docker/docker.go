// Package docker contributes a read-only container summary to the system
// snapshot when the daemon socket is present on the host.
package docker

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"

	"github.com/psdsmon/psdsmon/internal/models"
)

// Summarizer queries the local Docker daemon.
type Summarizer struct {
	client *client.Client
}

// NewSummarizer creates a summarizer over the default daemon socket.
func NewSummarizer() (*Summarizer, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}

	return &Summarizer{client: cli}, nil
}

// IsAvailable checks whether the daemon answers at all.
func (s *Summarizer) IsAvailable(ctx context.Context) bool {
	_, err := s.client.Ping(ctx)
	return err == nil
}

// Close closes the client connection.
func (s *Summarizer) Close() error {
	return s.client.Close()
}

// Summary lists all containers, running or not, reduced to the fields the
// DS view shows.
func (s *Summarizer) Summary(ctx context.Context) (*models.ContainerSummary, error) {
	containers, err := s.client.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}

	summary := &models.ContainerSummary{Total: len(containers)}
	for _, c := range containers {
		info := models.ContainerInfo{
			ID:     c.ID,
			Image:  c.Image,
			State:  c.State,
			Status: c.Status,
		}
		if len(c.ID) > 12 {
			info.ID = c.ID[:12]
		}
		if len(c.Names) > 0 {
			info.Name = strings.TrimPrefix(c.Names[0], "/")
		}
		if c.State == "running" {
			summary.Running++
		}
		summary.Containers = append(summary.Containers, info)
	}

	return summary, nil
}

// Enrich attaches the container summary to a snapshot. A daemon that does
// not answer leaves the snapshot untouched.
func (s *Summarizer) Enrich(snap *models.SystemSnapshot) {
	summary, err := s.Summary(context.Background())
	if err != nil {
		return
	}
	snap.Containers = summary
}
