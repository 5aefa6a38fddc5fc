package models

import (
	"errors"
	"html"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	TweetID   uint      `gorm:"not null;index;index:idx_comments_tweet_created,priority:1" json:"tweet_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author"`
	Content   string    `gorm:"size:1000;not null" json:"content"`
	LikeCount int64     `gorm:"not null;default:0" json:"like_count"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_comments_tweet_created,priority:2" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (c *Comment) Prepare() {
	c.ID = 0
	c.Content = html.EscapeString(strings.TrimSpace(c.Content))
	c.Author = User{}
	c.LikeCount = 0
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()
}

func (c *Comment) Validate() map[string]string {
	var errorMessages = make(map[string]string)

	if c.Content == "" {
		errorMessages["Required_content"] = "Content is required"
	}
	if c.AuthorID == 0 {
		errorMessages["Required_author"] = "Author is required"
	}
	if c.TweetID == 0 {
		errorMessages["Required_tweet"] = "Tweet is required"
	}
	return errorMessages
}

func (c *Comment) SaveComment(db *gorm.DB) (*Comment, error) {
	err := db.Create(&c).Error
	if err != nil {
		return nil, err
	}
	err = db.Preload("Author").Where("id = ?", c.ID).Take(&c).Error
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Comment) FindCommentByID(db *gorm.DB, cid uint) (*Comment, error) {
	var comment Comment
	err := db.Preload("Author").Where("id = ?", cid).Take(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("Comment not found")
		}
		return nil, err
	}
	return &comment, nil
}

func (c *Comment) GetTweetComments(db *gorm.DB, tid uint, skip, take int) (*[]Comment, error) {
	comments := []Comment{}
	err := db.Preload("Author").Where("tweet_id = ?", tid).
		Order("created_at desc, id desc").
		Offset(skip).Limit(take).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return &comments, nil
}

func (c *Comment) GetUserComments(db *gorm.DB, uid uint, skip, take int) (*[]Comment, error) {
	comments := []Comment{}
	err := db.Preload("Author").Where("author_id = ?", uid).
		Order("created_at desc, id desc").
		Offset(skip).Limit(take).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return &comments, nil
}

func (c *Comment) UpdateAComment(db *gorm.DB) (*Comment, error) {
	err := db.Model(&Comment{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"content":    c.Content,
		"updated_at": time.Now(),
	}).Error
	if err != nil {
		return nil, err
	}
	return c.FindCommentByID(db, c.ID)
}

func (c *Comment) DeleteAComment(db *gorm.DB) (int64, error) {
	result := db.Where("id = ?", c.ID).Delete(&Comment{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Comment likes are a plain counter; there is no per-user edge for them.
func (c *Comment) IncrementLikes(db *gorm.DB, cid uint) error {
	return db.Model(&Comment{}).Where("id = ?", cid).
		UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
}

func (c *Comment) DecrementLikes(db *gorm.DB, cid uint) error {
	return db.Model(&Comment{}).Where("id = ? AND like_count > 0", cid).
		UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error
}
