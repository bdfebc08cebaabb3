package model

import "time"

// AuditEventType tags an audit event. Each tag has exactly one detail shape.
type AuditEventType string

const (
	EventVideoUpdated   AuditEventType = "VIDEO_UPDATED"
	EventCommentReply   AuditEventType = "COMMENT_REPLY"
	EventCommentDeleted AuditEventType = "COMMENT_DELETED"
	EventNoteCreated    AuditEventType = "NOTE_CREATED"
)

// AuditEvent is an immutable record of a mutating action. Events are only
// ever appended; nothing in the application updates or deletes them.
type AuditEvent struct {
	Event     AuditEventType `json:"event" bson:"event"`
	Details   interface{}    `json:"details" bson:"details"`
	Timestamp time.Time      `json:"timestamp" bson:"timestamp"`
}

// VideoUpdatedDetails records a successful metadata update.
type VideoUpdatedDetails struct {
	VideoID  string `json:"videoId" bson:"videoId"`
	NewTitle string `json:"newTitle" bson:"newTitle"`
}

// CommentReplyDetails records a reply created under a parent comment.
type CommentReplyDetails struct {
	ParentID string `json:"parentId" bson:"parentId"`
	Text     string `json:"text" bson:"text"`
}

// CommentDeletedDetails records a comment removal.
type CommentDeletedDetails struct {
	CommentID string `json:"commentId" bson:"commentId"`
}

// NoteCreatedDetails records a note created against a video.
type NoteCreatedDetails struct {
	NoteID  string `json:"noteId" bson:"noteId"`
	VideoID string `json:"videoId" bson:"videoId"`
}

func NewVideoUpdatedEvent(videoID, newTitle string) AuditEvent {
	return AuditEvent{
		Event:     EventVideoUpdated,
		Details:   VideoUpdatedDetails{VideoID: videoID, NewTitle: newTitle},
		Timestamp: time.Now().UTC(),
	}
}

func NewCommentReplyEvent(parentID, text string) AuditEvent {
	return AuditEvent{
		Event:     EventCommentReply,
		Details:   CommentReplyDetails{ParentID: parentID, Text: text},
		Timestamp: time.Now().UTC(),
	}
}

func NewCommentDeletedEvent(commentID string) AuditEvent {
	return AuditEvent{
		Event:     EventCommentDeleted,
		Details:   CommentDeletedDetails{CommentID: commentID},
		Timestamp: time.Now().UTC(),
	}
}

func NewNoteCreatedEvent(noteID, videoID string) AuditEvent {
	return AuditEvent{
		Event:     EventNoteCreated,
		Details:   NoteCreatedDetails{NoteID: noteID, VideoID: videoID},
		Timestamp: time.Now().UTC(),
	}
}
