package youtube

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/omkar342/youtube-dashboard-server/domain/apperror"
	"github.com/omkar342/youtube-dashboard-server/domain/repository"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Client wraps a youtube.Service scoped to a single request's bearer token.
// The token arrives pre-issued from the frontend (Google Identity Services);
// this service never acquires or refreshes tokens itself.
type Client struct {
	service *youtube.Service
}

// NewClientFactory returns a repository.ClientFactory that builds one Client
// per request. timeout bounds every provider call made through the returned
// clients; there are no retries at this layer.
func NewClientFactory(timeout time.Duration) repository.ClientFactory {
	return func(ctx context.Context, accessToken string) (repository.IYouTubeAPI, error) {
		return NewClient(ctx, accessToken, timeout)
	}
}

// NewClient creates a YouTube API client authorized by accessToken.
func NewClient(ctx context.Context, accessToken string, timeout time.Duration) (repository.IYouTubeAPI, error) {
	if accessToken == "" {
		return nil, apperror.Unauthorized("no access token provided")
	}

	source := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	})
	httpClient := oauth2.NewClient(ctx, source)
	if timeout > 0 {
		httpClient.Timeout = timeout
	}

	service, err := youtube.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, apperror.Provider("failed to create YouTube service", err)
	}
	return &Client{service: service}, nil
}

// ListVideos fetches a single video with the requested parts. Zero items is
// not an error here; the caller decides whether that is a NotFound.
func (c *Client) ListVideos(ctx context.Context, videoID string, parts []string) ([]*youtube.Video, error) {
	response, err := c.service.Videos.List(parts).Id(videoID).Context(ctx).Do()
	if err != nil {
		return nil, translate("failed to list videos", err)
	}
	return response.Items, nil
}

// UpdateVideo submits video as a full snippet replacement.
func (c *Client) UpdateVideo(ctx context.Context, video *youtube.Video) (*youtube.Video, error) {
	response, err := c.service.Videos.Update([]string{"snippet"}, video).Context(ctx).Do()
	if err != nil {
		return nil, translate("failed to update video", err)
	}
	return response, nil
}

// ListCommentThreads returns comment threads for a video in provider order.
func (c *Client) ListCommentThreads(ctx context.Context, videoID string, maxResults int64) ([]*youtube.CommentThread, error) {
	response, err := c.service.CommentThreads.List([]string{"snippet", "replies"}).
		VideoId(videoID).
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, translate("failed to list comment threads", err)
	}
	return response.Items, nil
}

// InsertComment creates a reply comment.
func (c *Client) InsertComment(ctx context.Context, comment *youtube.Comment) (*youtube.Comment, error) {
	response, err := c.service.Comments.Insert([]string{"snippet"}, comment).Context(ctx).Do()
	if err != nil {
		return nil, translate("failed to insert comment", err)
	}
	return response, nil
}

// DeleteComment removes a comment by id. Deleting an already-deleted id fails
// with whatever the provider reports.
func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	if err := c.service.Comments.Delete(commentID).Context(ctx).Do(); err != nil {
		return translate("failed to delete comment", err)
	}
	return nil
}

// translate folds a googleapi error into the application taxonomy, keeping
// the provider's message intact for pass-through to the client.
func translate(op string, err error) error {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		switch gErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &apperror.AppError{Kind: apperror.KindUnauthorized, Message: gErr.Message, Err: err}
		case http.StatusNotFound:
			return &apperror.AppError{Kind: apperror.KindNotFound, Message: gErr.Message, Err: err}
		}
	}
	return apperror.Provider(op, err)
}
