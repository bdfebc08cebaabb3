package usecase_test

import (
	"testing"

	"github.com/omkar342/youtube-dashboard-server/domain/apperror"
	"github.com/omkar342/youtube-dashboard-server/domain/dto"
	"github.com/omkar342/youtube-dashboard-server/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionUseCase_SuggestTitles(t *testing.T) {
	uc := usecase.NewSuggestionUseCase()

	res, err := uc.SuggestTitles(&dto.SuggestTitlesRequest{CurrentTitle: "Go Modules"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Must Watch: Go Modules",
		"Go Modules - Explained!",
		"Top Secrets of Go Modules",
	}, res.Suggestions)

	// Deterministic: a second call yields the same output.
	again, err := uc.SuggestTitles(&dto.SuggestTitlesRequest{CurrentTitle: "Go Modules"})
	require.NoError(t, err)
	assert.Equal(t, res.Suggestions, again.Suggestions)
}

func TestSuggestionUseCase_SuggestTitles_MissingTitle(t *testing.T) {
	uc := usecase.NewSuggestionUseCase()

	_, err := uc.SuggestTitles(&dto.SuggestTitlesRequest{})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindBadRequest))

	_, err = uc.SuggestTitles(nil)
	assert.True(t, apperror.IsKind(err, apperror.KindBadRequest))
}
