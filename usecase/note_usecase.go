package usecase

import (
	"context"
	"time"

	"github.com/omkar342/youtube-dashboard-server/domain/apperror"
	"github.com/omkar342/youtube-dashboard-server/domain/dto"
	"github.com/omkar342/youtube-dashboard-server/domain/model"
	"github.com/omkar342/youtube-dashboard-server/domain/repository"
	"github.com/omkar342/youtube-dashboard-server/infrastructure/logger"

	"github.com/google/uuid"
)

// INoteUseCase manages the private per-video annotation store.
type INoteUseCase interface {
	ListByVideo(ctx context.Context, videoID string) ([]model.Note, error)
	Create(ctx context.Context, req *dto.NoteCreateRequest) (*model.Note, string, error)
	Update(ctx context.Context, id string, req *dto.NoteUpdateRequest) (*model.Note, error)
	Delete(ctx context.Context, id string) error
}

type NoteUseCase struct {
	noteRepo repository.INote
	auditLog repository.IAuditLog
}

func NewNoteUseCase(noteRepo repository.INote, auditLog repository.IAuditLog) INoteUseCase {
	return &NoteUseCase{noteRepo: noteRepo, auditLog: auditLog}
}

// ListByVideo returns the notes for a video, newest first.
func (u *NoteUseCase) ListByVideo(ctx context.Context, videoID string) ([]model.Note, error) {
	if videoID == "" {
		return nil, apperror.BadRequest("video ID is required")
	}
	return u.noteRepo.ListByVideo(ctx, videoID)
}

// Create stores a new note and records a NOTE_CREATED audit event. The
// returned warning is non-empty when the note was stored but the audit append
// failed.
func (u *NoteUseCase) Create(ctx context.Context, req *dto.NoteCreateRequest) (*model.Note, string, error) {
	if req == nil || req.VideoID == "" {
		return nil, "", apperror.BadRequest("video ID is required")
	}
	if req.Title == "" {
		return nil, "", apperror.BadRequest("note title is required")
	}
	if req.Content == "" {
		return nil, "", apperror.BadRequest("note content is required")
	}

	note := &model.Note{
		ID:        uuid.NewString(),
		VideoID:   req.VideoID,
		Title:     req.Title,
		Content:   req.Content,
		Tags:      req.Tags,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.noteRepo.Create(ctx, note); err != nil {
		return nil, "", err
	}

	warning := ""
	if u.auditLog != nil {
		if err := u.auditLog.Append(ctx, model.NewNoteCreatedEvent(note.ID, note.VideoID)); err != nil {
			warning = apperror.Sink("audit append failed", err).Error()
			logger.GetLogger().WithField("error", err).Error("Failed to append NOTE_CREATED audit event")
		}
	}
	return note, warning, nil
}

// Update replaces the editable fields of an existing note.
func (u *NoteUseCase) Update(ctx context.Context, id string, req *dto.NoteUpdateRequest) (*model.Note, error) {
	if id == "" {
		return nil, apperror.BadRequest("note ID is required")
	}
	if req == nil {
		return nil, apperror.BadRequest("update request is required")
	}
	return u.noteRepo.Update(ctx, id, req.Title, req.Content, req.Tags)
}

// Delete removes a note by id.
func (u *NoteUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperror.BadRequest("note ID is required")
	}
	return u.noteRepo.Delete(ctx, id)
}
