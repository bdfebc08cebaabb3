package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/omkar342/youtube-dashboard-server/domain/apperror"
	"github.com/omkar342/youtube-dashboard-server/domain/dto"
	"github.com/omkar342/youtube-dashboard-server/domain/model"
	"github.com/omkar342/youtube-dashboard-server/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) ListByVideo(ctx context.Context, videoID string) ([]model.Note, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *MockNoteRepository) Create(ctx context.Context, note *model.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) Update(ctx context.Context, id, title, content string, tags []string) (*model.Note, error) {
	args := m.Called(ctx, id, title, content, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

func (m *MockNoteRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestNoteUseCase_Create(t *testing.T) {
	mockRepo := new(MockNoteRepository)
	mockAudit := new(MockAuditLog)
	uc := usecase.NewNoteUseCase(mockRepo, mockAudit)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *model.Note) bool {
		return n.ID != "" && n.VideoID == "abc123" && n.Title == "Idea" && n.Content == "Try a shorter intro"
	})).Return(nil).Once()

	mockAudit.On("Append", mock.Anything, mock.MatchedBy(func(e model.AuditEvent) bool {
		details, ok := e.Details.(model.NoteCreatedDetails)
		return e.Event == model.EventNoteCreated && ok && details.VideoID == "abc123"
	})).Return(nil).Once()

	note, warning, err := uc.Create(context.Background(), &dto.NoteCreateRequest{
		VideoID: "abc123",
		Title:   "Idea",
		Content: "Try a shorter intro",
		Tags:    []string{"editing"},
	})
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.NotEmpty(t, note.ID)
	assert.False(t, note.CreatedAt.IsZero())
	mockRepo.AssertExpectations(t)
	mockAudit.AssertExpectations(t)
}

func TestNoteUseCase_Create_Validation(t *testing.T) {
	uc := usecase.NewNoteUseCase(new(MockNoteRepository), new(MockAuditLog))

	cases := []*dto.NoteCreateRequest{
		nil,
		{Title: "t", Content: "c"},
		{VideoID: "v", Content: "c"},
		{VideoID: "v", Title: "t"},
	}
	for _, req := range cases {
		_, _, err := uc.Create(context.Background(), req)
		assert.True(t, apperror.IsKind(err, apperror.KindBadRequest))
	}
}

func TestNoteUseCase_Create_AuditFailureIsWarningOnly(t *testing.T) {
	mockRepo := new(MockNoteRepository)
	mockAudit := new(MockAuditLog)
	uc := usecase.NewNoteUseCase(mockRepo, mockAudit)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	mockAudit.On("Append", mock.Anything, mock.Anything).Return(errors.New("sink down")).Once()

	note, warning, err := uc.Create(context.Background(), &dto.NoteCreateRequest{
		VideoID: "abc123", Title: "t", Content: "c",
	})
	require.NoError(t, err)
	assert.NotNil(t, note)
	assert.Contains(t, warning, "audit append failed")
}

func TestNoteUseCase_ListByVideo(t *testing.T) {
	mockRepo := new(MockNoteRepository)
	uc := usecase.NewNoteUseCase(mockRepo, new(MockAuditLog))

	notes := []model.Note{{ID: "n1", VideoID: "abc123"}}
	mockRepo.On("ListByVideo", mock.Anything, "abc123").Return(notes, nil).Once()

	got, err := uc.ListByVideo(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = uc.ListByVideo(context.Background(), "")
	assert.True(t, apperror.IsKind(err, apperror.KindBadRequest))
}

func TestNoteUseCase_Update(t *testing.T) {
	mockRepo := new(MockNoteRepository)
	uc := usecase.NewNoteUseCase(mockRepo, new(MockAuditLog))

	updated := &model.Note{ID: "n1", Title: "New"}
	mockRepo.On("Update", mock.Anything, "n1", "New", "Body", []string{"x"}).Return(updated, nil).Once()

	got, err := uc.Update(context.Background(), "n1", &dto.NoteUpdateRequest{Title: "New", Content: "Body", Tags: []string{"x"}})
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	mockRepo.AssertExpectations(t)
}

func TestNoteUseCase_Delete(t *testing.T) {
	mockRepo := new(MockNoteRepository)
	uc := usecase.NewNoteUseCase(mockRepo, new(MockAuditLog))

	mockRepo.On("Delete", mock.Anything, "n1").Return(nil).Once()
	require.NoError(t, uc.Delete(context.Background(), "n1"))

	err := uc.Delete(context.Background(), "")
	assert.True(t, apperror.IsKind(err, apperror.KindBadRequest))
	mockRepo.AssertExpectations(t)
}
