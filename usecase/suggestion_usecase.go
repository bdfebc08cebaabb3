package usecase

import (
	"fmt"

	"github.com/omkar342/youtube-dashboard-server/domain/apperror"
	"github.com/omkar342/youtube-dashboard-server/domain/dto"
)

const maxSuggestions = 3

// ISuggestionUseCase produces deterministic title suggestions. No side
// effects, no remote calls; the same input always yields the same output.
type ISuggestionUseCase interface {
	SuggestTitles(req *dto.SuggestTitlesRequest) (*dto.SuggestTitlesResponse, error)
}

type SuggestionUseCase struct{}

func NewSuggestionUseCase() ISuggestionUseCase {
	return &SuggestionUseCase{}
}

// SuggestTitles returns the first three templated variants of the current
// title, in a fixed order.
func (u *SuggestionUseCase) SuggestTitles(req *dto.SuggestTitlesRequest) (*dto.SuggestTitlesResponse, error) {
	if req == nil || req.CurrentTitle == "" {
		return nil, apperror.BadRequest("current title is required")
	}

	suggestions := []string{
		fmt.Sprintf("Must Watch: %s", req.CurrentTitle),
		fmt.Sprintf("%s - Explained!", req.CurrentTitle),
		fmt.Sprintf("Top Secrets of %s", req.CurrentTitle),
		fmt.Sprintf("Why %s Matters", req.CurrentTitle),
		fmt.Sprintf("The Ultimate Guide to %s", req.CurrentTitle),
	}
	return &dto.SuggestTitlesResponse{Suggestions: suggestions[:maxSuggestions]}, nil
}
