package http

import (
	"net/http"

	"github.com/omkar342/youtube-dashboard-server/domain/dto"
	"github.com/omkar342/youtube-dashboard-server/usecase"

	"github.com/gin-gonic/gin"
)

// INoteHandler defines the interface for note HTTP handlers
type INoteHandler interface {
	ListNotes(ctx *gin.Context)
	CreateNote(ctx *gin.Context)
	UpdateNote(ctx *gin.Context)
	DeleteNote(ctx *gin.Context)
}

type NoteHandler struct {
	noteUseCase usecase.INoteUseCase
}

func NewNoteHandler(noteUseCase usecase.INoteUseCase) INoteHandler {
	return &NoteHandler{noteUseCase: noteUseCase}
}

// ListNotes handles GET /api/notes/:videoId
func (h *NoteHandler) ListNotes(ctx *gin.Context) {
	notes, err := h.noteUseCase.ListByVideo(ctx.Request.Context(), ctx.Param("videoId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": notes})
}

// CreateNote handles POST /api/notes
func (h *NoteHandler) CreateNote(ctx *gin.Context) {
	var req dto.NoteCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	note, warning, err := h.noteUseCase.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := gin.H{"success": true, "data": note}
	if warning != "" {
		response["warning"] = warning
	}
	ctx.JSON(http.StatusCreated, response)
}

// UpdateNote handles PUT /api/notes/:id
func (h *NoteHandler) UpdateNote(ctx *gin.Context) {
	var req dto.NoteUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	note, err := h.noteUseCase.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": note})
}

// DeleteNote handles DELETE /api/notes/:id
func (h *NoteHandler) DeleteNote(ctx *gin.Context) {
	if err := h.noteUseCase.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Note deleted"})
}
