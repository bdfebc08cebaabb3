package model

import "time"

// Note is a private annotation a creator keeps against one of their videos.
type Note struct {
	ID        string    `json:"id" bson:"_id"`
	VideoID   string    `json:"video_id" bson:"videoId"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	Tags      []string  `json:"tags" bson:"tags"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
}
