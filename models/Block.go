package models

import "time"

// Block is a directed edge, but feed visibility treats it as symmetric:
// neither side sees the other's tweets while any block exists between them.
type Block struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	BlockerID uint      `gorm:"not null;index;uniqueIndex:idx_blocks_unique" json:"blocker_id"`
	BlockedID uint      `gorm:"not null;index;uniqueIndex:idx_blocks_unique" json:"blocked_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type Mute struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	MuterID   uint      `gorm:"not null;index;uniqueIndex:idx_mutes_unique" json:"muter_id"`
	MutedID   uint      `gorm:"not null;index;uniqueIndex:idx_mutes_unique" json:"muted_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
