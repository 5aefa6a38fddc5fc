package models

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Like and Retweet are (user, tweet) edges. The edge row is the source of
// truth; the denormalized counter on Tweet moves only inside the same
// transaction as the edge write, and only when the write changed a row.

type Like struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_likes_unique" json:"user_id"`
	TweetID   uint      `gorm:"not null;index;uniqueIndex:idx_likes_unique" json:"tweet_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type Retweet struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_retweets_unique" json:"user_id"`
	TweetID   uint      `gorm:"not null;index;uniqueIndex:idx_retweets_unique" json:"tweet_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// SaveLike inserts the edge idempotently and bumps the tweet counter when a
// row was actually created. Returns whether a new edge appeared.
func (l *Like) SaveLike(db *gorm.DB) (bool, error) {
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(l)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		created = true
		return tx.Model(&Tweet{}).Where("id = ?", l.TweetID).
			UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
	})
	return created, err
}

// DeleteLike removes the edge and decrements the counter when an edge was
// actually there to remove.
func (l *Like) DeleteLike(db *gorm.DB) (bool, error) {
	removed := false
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND tweet_id = ?", l.UserID, l.TweetID).Delete(&Like{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		removed = true
		return tx.Model(&Tweet{}).Where("id = ? AND like_count > 0", l.TweetID).
			UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error
	})
	return removed, err
}

func (l *Like) LikeExists(db *gorm.DB, uid, tid uint) (bool, error) {
	var count int64
	err := db.Model(&Like{}).Where("user_id = ? AND tweet_id = ?", uid, tid).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (l *Like) GetTweetLikes(db *gorm.DB, tid uint) (*[]Like, error) {
	likes := []Like{}
	err := db.Preload("User").Where("tweet_id = ?", tid).Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return &likes, nil
}

func (r *Retweet) SaveRetweet(db *gorm.DB) (bool, error) {
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(r)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		created = true
		return tx.Model(&Tweet{}).Where("id = ?", r.TweetID).
			UpdateColumn("retweet_count", gorm.Expr("retweet_count + 1")).Error
	})
	return created, err
}

func (r *Retweet) DeleteRetweet(db *gorm.DB) (bool, error) {
	removed := false
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND tweet_id = ?", r.UserID, r.TweetID).Delete(&Retweet{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		removed = true
		return tx.Model(&Tweet{}).Where("id = ? AND retweet_count > 0", r.TweetID).
			UpdateColumn("retweet_count", gorm.Expr("retweet_count - 1")).Error
	})
	return removed, err
}
