package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/omkar342/youtube-dashboard-server/domain/apperror"
	"github.com/omkar342/youtube-dashboard-server/domain/model"
	"github.com/omkar342/youtube-dashboard-server/domain/repository"
	"github.com/omkar342/youtube-dashboard-server/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const noteCollection = "notes"

// NoteRepository stores notes in MongoDB, keyed by generated id and indexed
// by video id.
type NoteRepository struct {
	client *mongo.Client
	dbName string
}

func NewNoteRepository(client *mongo.Client, dbName string) repository.INote {
	return &NoteRepository{client: client, dbName: dbName}
}

func (r *NoteRepository) collection() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(noteCollection)
}

// ListByVideo returns the notes for a video, newest first.
func (r *NoteRepository) ListByVideo(ctx context.Context, videoID string) ([]model.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection().Find(ctx, bson.D{{Key: "videoId", Value: videoID}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer func(cursor *mongo.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}(cursor, ctx)

	notes := make([]model.Note, 0)
	for cursor.Next(ctx) {
		var note model.Note
		if err := cursor.Decode(&note); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while decoding note")
			continue
		}
		notes = append(notes, note)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}
	return notes, nil
}

func (r *NoteRepository) Create(ctx context.Context, note *model.Note) error {
	if _, err := r.collection().InsertOne(ctx, note); err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

// Update replaces the editable fields and returns the updated document.
func (r *NoteRepository) Update(ctx context.Context, id, title, content string, tags []string) (*model.Note, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: title},
		{Key: "content", Value: content},
		{Key: "tags", Value: tags},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var note model.Note
	err := r.collection().FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("note not found")
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return &note, nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperror.NotFound("note not found")
	}
	return nil
}
