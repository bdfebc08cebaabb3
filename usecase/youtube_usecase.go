package usecase

import (
	"context"

	"github.com/omkar342/youtube-dashboard-server/domain/apperror"
	"github.com/omkar342/youtube-dashboard-server/domain/dto"
	"github.com/omkar342/youtube-dashboard-server/domain/model"
	"github.com/omkar342/youtube-dashboard-server/domain/repository"
	"github.com/omkar342/youtube-dashboard-server/infrastructure/logger"

	"google.golang.org/api/youtube/v3"
)

const (
	defaultCommentPageSize int64 = 20
	maxCommentPageSize     int64 = 100
)

// IYouTubeUseCase reconciles partial metadata updates against the remote
// video resource and relays comment moderation calls, recording every
// mutation to the audit log. Mutating operations return a warning string
// alongside the result: non-empty when the remote mutation committed but the
// audit append failed.
type IYouTubeUseCase interface {
	GetVideo(ctx context.Context, accessToken, videoID string) (*youtube.Video, error)
	UpdateVideo(ctx context.Context, accessToken, videoID string, req *dto.VideoUpdateRequest) (*youtube.Video, string, error)
	ListComments(ctx context.Context, accessToken, videoID string, maxResults int64) ([]*youtube.CommentThread, error)
	ReplyToComment(ctx context.Context, accessToken string, req *dto.CommentReplyRequest) (*youtube.Comment, string, error)
	DeleteComment(ctx context.Context, accessToken, commentID string) (string, error)
}

// YouTubeUseCase implements IYouTubeUseCase over a per-request client factory.
type YouTubeUseCase struct {
	newClient repository.ClientFactory
	auditLog  repository.IAuditLog
}

// NewYouTubeUseCase creates a new YouTube use case instance.
func NewYouTubeUseCase(newClient repository.ClientFactory, auditLog repository.IAuditLog) IYouTubeUseCase {
	return &YouTubeUseCase{newClient: newClient, auditLog: auditLog}
}

// client verifies the credential is present and builds a token-scoped client.
// The check runs before any remote call so a missing token never reaches the
// provider.
func (u *YouTubeUseCase) client(ctx context.Context, accessToken string) (repository.IYouTubeAPI, error) {
	if accessToken == "" {
		return nil, apperror.Unauthorized("no access token provided")
	}
	return u.newClient(ctx, accessToken)
}

// GetVideo fetches the full video resource (snippet, statistics, status) and
// returns the provider payload verbatim.
func (u *YouTubeUseCase) GetVideo(ctx context.Context, accessToken, videoID string) (*youtube.Video, error) {
	if videoID == "" {
		return nil, apperror.BadRequest("video ID is required")
	}
	client, err := u.client(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	videos, err := client.ListVideos(ctx, videoID, []string{"snippet", "statistics", "status"})
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, apperror.NotFound("video not found")
	}
	return videos[0], nil
}

// UpdateVideo merges the partial request into the current remote snippet and
// submits the result as a full replacement. Fields the caller left empty keep
// their fetched values; the merge is field-level, never object replacement.
func (u *YouTubeUseCase) UpdateVideo(ctx context.Context, accessToken, videoID string, req *dto.VideoUpdateRequest) (*youtube.Video, string, error) {
	if videoID == "" {
		return nil, "", apperror.BadRequest("video ID is required")
	}
	if req == nil {
		req = &dto.VideoUpdateRequest{}
	}
	client, err := u.client(ctx, accessToken)
	if err != nil {
		return nil, "", err
	}

	videos, err := client.ListVideos(ctx, videoID, []string{"snippet"})
	if err != nil {
		return nil, "", err
	}
	if len(videos) == 0 {
		return nil, "", apperror.NotFound("video not found")
	}

	// Overlay only the fields the caller set; the fetched snippet carries
	// everything else (tags, thumbnails, language, ...) through unchanged.
	snippet := videos[0].Snippet
	if req.Title != "" {
		snippet.Title = req.Title
	}
	if req.Description != "" {
		snippet.Description = req.Description
	}
	if req.CategoryID != "" {
		snippet.CategoryId = req.CategoryID
	}

	updated, err := client.UpdateVideo(ctx, &youtube.Video{Id: videoID, Snippet: snippet})
	if err != nil {
		return nil, "", err
	}

	warning := u.appendAudit(ctx, model.NewVideoUpdatedEvent(videoID, req.Title))
	return updated, warning, nil
}

// ListComments returns the comment threads for a video, newest first as the
// provider orders them.
func (u *YouTubeUseCase) ListComments(ctx context.Context, accessToken, videoID string, maxResults int64) ([]*youtube.CommentThread, error) {
	if videoID == "" {
		return nil, apperror.BadRequest("video ID required")
	}
	if maxResults <= 0 {
		maxResults = defaultCommentPageSize
	}
	if maxResults > maxCommentPageSize {
		maxResults = maxCommentPageSize
	}
	client, err := u.client(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return client.ListCommentThreads(ctx, videoID, maxResults)
}

// ReplyToComment creates a child comment under req.ParentID.
func (u *YouTubeUseCase) ReplyToComment(ctx context.Context, accessToken string, req *dto.CommentReplyRequest) (*youtube.Comment, string, error) {
	if req == nil || req.ParentID == "" {
		return nil, "", apperror.BadRequest("parent comment ID is required")
	}
	if req.Text == "" {
		return nil, "", apperror.BadRequest("comment text is required")
	}
	client, err := u.client(ctx, accessToken)
	if err != nil {
		return nil, "", err
	}

	comment, err := client.InsertComment(ctx, &youtube.Comment{
		Snippet: &youtube.CommentSnippet{
			ParentId:     req.ParentID,
			TextOriginal: req.Text,
		},
	})
	if err != nil {
		return nil, "", err
	}

	warning := u.appendAudit(ctx, model.NewCommentReplyEvent(req.ParentID, req.Text))
	return comment, warning, nil
}

// DeleteComment removes a comment. Idempotency is the provider's call: a
// second delete of the same id surfaces the provider error untouched.
func (u *YouTubeUseCase) DeleteComment(ctx context.Context, accessToken, commentID string) (string, error) {
	if commentID == "" {
		return "", apperror.BadRequest("comment ID is required")
	}
	client, err := u.client(ctx, accessToken)
	if err != nil {
		return "", err
	}

	if err := client.DeleteComment(ctx, commentID); err != nil {
		return "", err
	}

	warning := u.appendAudit(ctx, model.NewCommentDeletedEvent(commentID))
	return warning, nil
}

// appendAudit records the event after the remote mutation has committed. A
// sink failure is reported as a warning, never rolled back into the primary
// operation: the remote state already changed.
func (u *YouTubeUseCase) appendAudit(ctx context.Context, event model.AuditEvent) string {
	if u.auditLog == nil {
		return ""
	}
	if err := u.auditLog.Append(ctx, event); err != nil {
		sinkErr := apperror.Sink("audit append failed", err)
		logger.GetLogger().
			WithField("event", event.Event).
			WithField("error", err).
			Error("Failed to append audit event")
		return sinkErr.Error()
	}
	return ""
}
