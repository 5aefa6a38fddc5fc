package models

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Bookmark struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_bookmarks_unique" json:"user_id"`
	TweetID   uint      `gorm:"not null;index;uniqueIndex:idx_bookmarks_unique" json:"tweet_id"`
	Tweet     Tweet     `gorm:"foreignKey:TweetID" json:"tweet"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// SaveBookmark is idempotent: bookmarking twice keeps a single row.
func (b *Bookmark) SaveBookmark(db *gorm.DB) (bool, error) {
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(b)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (b *Bookmark) DeleteBookmark(db *gorm.DB, uid, tid uint) (int64, error) {
	result := db.Where("user_id = ? AND tweet_id = ?", uid, tid).Delete(&Bookmark{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// GetUserBookmarks returns the user's bookmarked tweets, newest bookmark
// first, with the same enrichment the feeds carry.
func (b *Bookmark) GetUserBookmarks(db *gorm.DB, uid uint, skip, take int) (*[]Bookmark, error) {
	bookmarks := []Bookmark{}
	err := db.Preload("Tweet").Preload("Tweet.Author").Preload("Tweet.Media").
		Where("user_id = ?", uid).
		Order("created_at desc, id desc").
		Offset(skip).Limit(take).
		Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}

	tweets := make([]Tweet, len(bookmarks))
	for i := range bookmarks {
		tweets[i] = bookmarks[i].Tweet
	}
	if err := attachRecentCommentsToSlice(db, tweets); err != nil {
		return nil, err
	}
	for i := range bookmarks {
		bookmarks[i].Tweet = tweets[i]
	}
	return &bookmarks, nil
}

func (b *Bookmark) IsBookmarked(db *gorm.DB, uid, tid uint) (bool, error) {
	var count int64
	err := db.Model(&Bookmark{}).Where("user_id = ? AND tweet_id = ?", uid, tid).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
