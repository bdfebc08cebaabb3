package repository

import (
	"context"

	"google.golang.org/api/youtube/v3"
)

// IYouTubeAPI is the thin call surface against the YouTube Data API v3. It
// exposes the provider's resource types directly so callers can round-trip a
// fetched snippet back through an update without losing fields this service
// does not explicitly manage.
type IYouTubeAPI interface {
	// ListVideos fetches the given video with the requested parts. An empty
	// result slice means the video does not exist (or is not visible to the
	// credential); that decision belongs to the caller.
	ListVideos(ctx context.Context, videoID string, parts []string) ([]*youtube.Video, error)
	// UpdateVideo submits a full snippet replacement for video.Id.
	UpdateVideo(ctx context.Context, video *youtube.Video) (*youtube.Video, error)
	// ListCommentThreads returns the threads for a video in provider order.
	ListCommentThreads(ctx context.Context, videoID string, maxResults int64) ([]*youtube.CommentThread, error)
	// InsertComment creates a reply; the snippet must carry ParentId and
	// TextOriginal.
	InsertComment(ctx context.Context, comment *youtube.Comment) (*youtube.Comment, error)
	// DeleteComment removes a comment by id.
	DeleteComment(ctx context.Context, commentID string) error
}

// ClientFactory builds a provider client scoped to a single request's bearer
// token. A new client per request keeps concurrent requests isolated; no
// client is ever shared across credentials.
type ClientFactory func(ctx context.Context, accessToken string) (IYouTubeAPI, error)
