package dto

// VideoUpdateRequest carries a partial metadata update. An empty field means
// "leave the remote value alone": the merge never writes an empty value over
// an existing one, so a caller cannot blank a field through this endpoint.
type VideoUpdateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  string `json:"categoryId"`
}

// CommentReplyRequest creates a reply under an existing top-level comment.
type CommentReplyRequest struct {
	ParentID string `json:"parentId"`
	Text     string `json:"text"`
}
