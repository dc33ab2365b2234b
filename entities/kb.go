package entities

import "time"

// KBDocument is an agronomic reference note shared by every user.
type KBDocument struct {
	DocID     uint      `gorm:"primaryKey" json:"docId"`
	Title     string    `json:"title"`
	SourceURL string    `json:"sourceUrl"`
	Tags      string    `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

type KBChunk struct {
	ChunkID   uint      `gorm:"primaryKey" json:"chunkId"`
	DocID     uint      `gorm:"index" json:"docId"`
	Ord       int       `json:"ord"`
	Text      string    `json:"text"`
	Embedding []byte    `json:"-"` // little-endian float32
	CreatedAt time.Time `json:"-"`
}
