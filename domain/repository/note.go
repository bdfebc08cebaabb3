package repository

import (
	"context"

	"github.com/omkar342/youtube-dashboard-server/domain/model"
)

// INote is the keyed document store for per-video annotations.
type INote interface {
	ListByVideo(ctx context.Context, videoID string) ([]model.Note, error)
	Create(ctx context.Context, note *model.Note) error
	Update(ctx context.Context, id, title, content string, tags []string) (*model.Note, error)
	Delete(ctx context.Context, id string) error
}
