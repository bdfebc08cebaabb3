package http

import (
	"net/http"
	"strconv"

	"github.com/omkar342/youtube-dashboard-server/domain/dto"
	"github.com/omkar342/youtube-dashboard-server/interfaces/middleware"
	"github.com/omkar342/youtube-dashboard-server/usecase"

	"github.com/gin-gonic/gin"
)

// IYouTubeHandler defines the interface for YouTube HTTP handlers
type IYouTubeHandler interface {
	GetVideo(ctx *gin.Context)
	UpdateVideo(ctx *gin.Context)
	ListComments(ctx *gin.Context)
	ReplyToComment(ctx *gin.Context)
	DeleteComment(ctx *gin.Context)
}

// YouTubeHandler binds the video and comment routes to the use case. It only
// extracts parameters and maps errors to statuses; all merge and relay logic
// lives below.
type YouTubeHandler struct {
	youtubeUseCase usecase.IYouTubeUseCase
}

// NewYouTubeHandler creates a new YouTube handler instance
func NewYouTubeHandler(youtubeUseCase usecase.IYouTubeUseCase) IYouTubeHandler {
	return &YouTubeHandler{youtubeUseCase: youtubeUseCase}
}

// GetVideo handles GET /api/youtube/video/:id
func (h *YouTubeHandler) GetVideo(ctx *gin.Context) {
	video, err := h.youtubeUseCase.GetVideo(
		ctx.Request.Context(),
		ctx.GetString(middleware.AccessTokenKey),
		ctx.Param("id"),
	)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": video})
}

// UpdateVideo handles PUT /api/youtube/video/:id
func (h *YouTubeHandler) UpdateVideo(ctx *gin.Context) {
	var req dto.VideoUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	video, warning, err := h.youtubeUseCase.UpdateVideo(
		ctx.Request.Context(),
		ctx.GetString(middleware.AccessTokenKey),
		ctx.Param("id"),
		&req,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := gin.H{"success": true, "data": video}
	if warning != "" {
		response["warning"] = warning
	}
	ctx.JSON(http.StatusOK, response)
}

// ListComments handles GET /api/youtube/comments?videoId=
func (h *YouTubeHandler) ListComments(ctx *gin.Context) {
	var maxResults int64
	if raw := ctx.Query("maxResults"); raw != "" {
		if val, err := strconv.ParseInt(raw, 10, 64); err == nil {
			maxResults = val
		}
	}

	threads, err := h.youtubeUseCase.ListComments(
		ctx.Request.Context(),
		ctx.GetString(middleware.AccessTokenKey),
		ctx.Query("videoId"),
		maxResults,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": threads})
}

// ReplyToComment handles POST /api/youtube/comments/reply
func (h *YouTubeHandler) ReplyToComment(ctx *gin.Context) {
	var req dto.CommentReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	comment, warning, err := h.youtubeUseCase.ReplyToComment(
		ctx.Request.Context(),
		ctx.GetString(middleware.AccessTokenKey),
		&req,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := gin.H{"success": true, "data": comment}
	if warning != "" {
		response["warning"] = warning
	}
	ctx.JSON(http.StatusCreated, response)
}

// DeleteComment handles DELETE /api/youtube/comments/:id
func (h *YouTubeHandler) DeleteComment(ctx *gin.Context) {
	warning, err := h.youtubeUseCase.DeleteComment(
		ctx.Request.Context(),
		ctx.GetString(middleware.AccessTokenKey),
		ctx.Param("id"),
	)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := gin.H{"success": true, "message": "Comment deleted"}
	if warning != "" {
		response["warning"] = warning
	}
	ctx.JSON(http.StatusOK, response)
}
