package http

import (
	"net/http"

	"github.com/omkar342/youtube-dashboard-server/domain/dto"
	"github.com/omkar342/youtube-dashboard-server/usecase"

	"github.com/gin-gonic/gin"
)

// IAIHandler defines the interface for the title suggestion endpoint
type IAIHandler interface {
	SuggestTitles(ctx *gin.Context)
}

type AIHandler struct {
	suggestionUseCase usecase.ISuggestionUseCase
}

func NewAIHandler(suggestionUseCase usecase.ISuggestionUseCase) IAIHandler {
	return &AIHandler{suggestionUseCase: suggestionUseCase}
}

// SuggestTitles handles POST /api/ai/suggest-titles
func (h *AIHandler) SuggestTitles(ctx *gin.Context) {
	var req dto.SuggestTitlesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := h.suggestionUseCase.SuggestTitles(&req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
