package dto

// NoteCreateRequest creates a note against a video.
type NoteCreateRequest struct {
	VideoID string   `json:"videoId"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// NoteUpdateRequest replaces the editable fields of an existing note.
type NoteUpdateRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}
