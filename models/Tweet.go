package models

import (
	"errors"
	"html"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Tweet struct {
	ID              uint         `gorm:"primary_key;autoIncrement" json:"id"`
	AuthorID        uint         `gorm:"not null;index;index:idx_tweets_author_created,priority:1" json:"author_id"`
	Author          User         `gorm:"foreignKey:AuthorID" json:"author"`
	Content         string       `gorm:"size:1000;not null" json:"content"`
	LikeCount       int64        `gorm:"not null;default:0" json:"like_count"`
	RetweetCount    int64        `gorm:"not null;default:0" json:"retweet_count"`
	ViewCount       int64        `gorm:"not null;default:0" json:"view_count"`
	CommentsEnabled bool         `gorm:"not null" json:"comments_enabled"`
	Location        string       `gorm:"size:255" json:"location,omitempty"`
	Latitude        *float64     `json:"latitude,omitempty"`
	Longitude       *float64     `json:"longitude,omitempty"`
	Media           []TweetMedia `gorm:"foreignKey:TweetID" json:"media"`
	Comments        []Comment    `gorm:"foreignKey:TweetID" json:"comments"`
	CreatedAt       time.Time    `gorm:"autoCreateTime;index:idx_tweets_author_created,priority:2" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

type TweetMedia struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	TweetID   uint      `gorm:"not null;index" json:"tweet_id"`
	MediaURL  string    `gorm:"size:500;not null" json:"media_url"`
	MediaType string    `gorm:"size:20;not null;default:image" json:"media_type"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (t *Tweet) Prepare() {
	t.ID = 0
	t.Content = html.EscapeString(strings.TrimSpace(t.Content))
	t.Author = User{}
	t.LikeCount = 0
	t.RetweetCount = 0
	t.ViewCount = 0
	t.CreatedAt = time.Now()
	t.UpdatedAt = time.Now()
}

func (t *Tweet) Validate() map[string]string {
	var errorMessages = make(map[string]string)

	if t.Content == "" {
		errorMessages["Required_content"] = "Content is required"
	}
	if t.AuthorID == 0 {
		errorMessages["Required_author"] = "Author is required"
	}
	return errorMessages
}

// SaveTweet creates the tweet and any provided media rows, then reloads the
// record with its associations for the response.
func (t *Tweet) SaveTweet(db *gorm.DB, mediaURLs []string) (*Tweet, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&User{}, t.AuthorID).Error; err != nil {
			return err
		}
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		for _, url := range mediaURLs {
			trimmed := strings.TrimSpace(url)
			mediaType := "video"
			if imageURLPattern.MatchString(trimmed) {
				mediaType = "image"
			}
			media := TweetMedia{
				TweetID:   t.ID,
				MediaURL:  trimmed,
				MediaType: mediaType,
			}
			if err := tx.Create(&media).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t.FindTweetByID(db, t.ID)
}

func (t *Tweet) FindTweetByID(db *gorm.DB, tid uint) (*Tweet, error) {
	var tweet Tweet
	err := db.Preload("Author").Preload("Media").Where("id = ?", tid).Take(&tweet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("Tweet not found")
		}
		return nil, err
	}
	if err := attachRecentComments(db, []*Tweet{&tweet}, 0); err != nil {
		return nil, err
	}
	return &tweet, nil
}

// FindAllTweets is the unauthenticated listing: every tweet, newest first.
func (t *Tweet) FindAllTweets(db *gorm.DB, skip, take int) ([]Tweet, error) {
	tweets := []Tweet{}
	err := db.Preload("Author").Preload("Media").
		Order("created_at desc, id desc").
		Offset(skip).Limit(take).
		Find(&tweets).Error
	if err != nil {
		return nil, err
	}
	if err := attachRecentCommentsToSlice(db, tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

func (t *Tweet) FindTweetsByAuthor(db *gorm.DB, uid uint, skip, take int) ([]Tweet, error) {
	tweets := []Tweet{}
	err := db.Preload("Author").Preload("Media").
		Where("author_id = ?", uid).
		Order("created_at desc, id desc").
		Offset(skip).Limit(take).
		Find(&tweets).Error
	if err != nil {
		return nil, err
	}
	if err := attachRecentCommentsToSlice(db, tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

func (t *Tweet) SearchTweets(db *gorm.DB, query string, skip, take int) ([]Tweet, error) {
	tweets := []Tweet{}
	pattern := "%" + strings.TrimSpace(query) + "%"
	err := db.Preload("Author").Preload("Media").
		Where("content LIKE ?", pattern).
		Order("created_at desc, id desc").
		Offset(skip).Limit(take).
		Find(&tweets).Error
	if err != nil {
		return nil, err
	}
	return tweets, nil
}

func (t *Tweet) IncrementViews(db *gorm.DB, tid uint) error {
	return db.Model(&Tweet{}).Where("id = ?", tid).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// DeleteTweet removes the tweet and its dependent rows in one transaction.
func (t *Tweet) DeleteTweet(db *gorm.DB, tid uint) (int64, error) {
	var rows int64
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tweet_id = ?", tid).Delete(&Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tweet_id = ?", tid).Delete(&Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tweet_id = ?", tid).Delete(&Retweet{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tweet_id = ?", tid).Delete(&Bookmark{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tweet_id = ?", tid).Delete(&TweetMedia{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tweet_id = ?", tid).Delete(&Notification{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", tid).Delete(&Tweet{})
		if result.Error != nil {
			return result.Error
		}
		rows = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return rows, nil
}
