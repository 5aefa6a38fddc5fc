package models

import (
	"errors"
	"html"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/twinj/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             uint      `gorm:"primary_key;autoIncrement" json:"id"`
	PublicID       string    `gorm:"type:uuid;uniqueIndex;column:public_id" json:"public_id"`
	Username       string    `gorm:"size:255;not null;unique" json:"username"`
	Email          string    `gorm:"size:100;not null;unique" json:"email"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Bio            string    `gorm:"size:500" json:"bio"`
	Avatar         string    `gorm:"size:500" json:"avatar"`
	FollowersCount int64     `gorm:"not null;default:0" json:"followers_count"`
	FollowingCount int64     `gorm:"not null;default:0" json:"following_count"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if strings.TrimSpace(u.PublicID) == "" {
		u.PublicID = uuid.NewV4().String()
	}
	return nil
}

func (u *User) Prepare() {
	u.Username = html.EscapeString(strings.ToLower(strings.TrimSpace(u.Username)))
	u.Email = html.EscapeString(strings.ToLower(strings.TrimSpace(u.Email)))
	u.Name = html.EscapeString(strings.TrimSpace(u.Name))
	u.Bio = html.EscapeString(strings.TrimSpace(u.Bio))
	u.CreatedAt = time.Now()
	u.UpdatedAt = time.Now()
}

func (u *User) Validate(action string) map[string]string {
	var errorMessages = make(map[string]string)

	switch strings.ToLower(action) {
	case "update":
		if u.Email != "" {
			if err := checkmail.ValidateFormat(u.Email); err != nil {
				errorMessages["Invalid_email"] = "Invalid Email"
			}
		}
	default:
		if u.Username == "" {
			errorMessages["Required_username"] = "Required Username"
		}
		if u.Name == "" {
			errorMessages["Required_name"] = "Required Name"
		}
		if u.Email == "" {
			errorMessages["Required_email"] = "Required Email"
		}
		if u.Email != "" {
			if err := checkmail.ValidateFormat(u.Email); err != nil {
				errorMessages["Invalid_email"] = "Invalid Email"
			}
		}
	}
	return errorMessages
}

func (u *User) SaveUser(db *gorm.DB) (*User, error) {
	err := db.Create(&u).Error
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) FindAllUsers(db *gorm.DB) (*[]User, error) {
	var users []User
	err := db.Limit(100).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return &users, nil
}

func (u *User) FindUserByID(db *gorm.DB, uid uint) (*User, error) {
	var user User
	err := db.Where("id = ?", uid).Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("User not found")
		}
		return nil, err
	}
	return &user, nil
}

func (u *User) FindUserByUsername(db *gorm.DB, username string) (*User, error) {
	var user User
	err := db.Where("username = ?", strings.ToLower(strings.TrimSpace(username))).Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("User not found")
		}
		return nil, err
	}
	return &user, nil
}

func (u *User) UpdateAUser(db *gorm.DB, uid uint) (*User, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if u.Name != "" {
		updates["name"] = u.Name
	}
	if u.Bio != "" {
		updates["bio"] = u.Bio
	}
	if u.Avatar != "" {
		updates["avatar"] = u.Avatar
	}
	if u.Email != "" {
		updates["email"] = u.Email
	}

	err := db.Model(&User{}).Where("id = ?", uid).Updates(updates).Error
	if err != nil {
		return nil, err
	}

	err = db.Where("id = ?", uid).Take(&u).Error
	if err != nil {
		return nil, err
	}
	return u, nil
}

// RecentTweets returns the user's latest tweets for the profile view.
func (u *User) RecentTweets(db *gorm.DB, take int) ([]Tweet, error) {
	tweets := []Tweet{}
	err := db.Preload("Media").
		Where("author_id = ?", u.ID).
		Order("created_at desc, id desc").
		Limit(take).
		Find(&tweets).Error
	if err != nil {
		return nil, err
	}
	return tweets, nil
}

// DeleteAUser purges the user and every dependent row in one transaction.
// A mid-sequence failure rolls back the whole cascade; a tweet must never
// outlive its author.
func (u *User) DeleteAUser(db *gorm.DB, uid uint) (int64, error) {
	var rows int64
	err := db.Transaction(func(tx *gorm.DB) error {
		var tweetIDs []uint
		if err := tx.Model(&Tweet{}).Where("author_id = ?", uid).Pluck("id", &tweetIDs).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ? OR actor_id = ?", uid, uid).Delete(&Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("reporter_id = ? OR reported_id = ?", uid, uid).Delete(&Report{}).Error; err != nil {
			return err
		}
		if err := tx.Where("muter_id = ? OR muted_id = ?", uid, uid).Delete(&Mute{}).Error; err != nil {
			return err
		}
		if err := tx.Where("blocker_id = ? OR blocked_id = ?", uid, uid).Delete(&Block{}).Error; err != nil {
			return err
		}

		var messageIDs []uint
		if err := tx.Model(&Message{}).Where("sender_id = ?", uid).Pluck("id", &messageIDs).Error; err != nil {
			return err
		}
		if len(messageIDs) > 0 {
			if err := tx.Where("message_id IN ?", messageIDs).Delete(&MessageMedia{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", messageIDs).Delete(&Message{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", uid).Delete(&ChatMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", uid).Delete(&Bookmark{}).Error; err != nil {
			return err
		}

		// Likes and retweets placed by this user: decrement each affected
		// tweet's counter before the edge rows go, so counters stay honest.
		var likedTweetIDs []uint
		if err := tx.Model(&Like{}).Where("user_id = ?", uid).Pluck("tweet_id", &likedTweetIDs).Error; err != nil {
			return err
		}
		for _, tid := range likedTweetIDs {
			if err := tx.Model(&Tweet{}).Where("id = ? AND like_count > 0", tid).
				UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", uid).Delete(&Like{}).Error; err != nil {
			return err
		}

		var retweetedTweetIDs []uint
		if err := tx.Model(&Retweet{}).Where("user_id = ?", uid).Pluck("tweet_id", &retweetedTweetIDs).Error; err != nil {
			return err
		}
		for _, tid := range retweetedTweetIDs {
			if err := tx.Model(&Tweet{}).Where("id = ? AND retweet_count > 0", tid).
				UpdateColumn("retweet_count", gorm.Expr("retweet_count - 1")).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", uid).Delete(&Retweet{}).Error; err != nil {
			return err
		}

		if err := tx.Where("author_id = ?", uid).Delete(&Comment{}).Error; err != nil {
			return err
		}

		if len(tweetIDs) > 0 {
			if err := tx.Where("tweet_id IN ?", tweetIDs).Delete(&Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("tweet_id IN ?", tweetIDs).Delete(&Like{}).Error; err != nil {
				return err
			}
			if err := tx.Where("tweet_id IN ?", tweetIDs).Delete(&Retweet{}).Error; err != nil {
				return err
			}
			if err := tx.Where("tweet_id IN ?", tweetIDs).Delete(&Bookmark{}).Error; err != nil {
				return err
			}
			if err := tx.Where("tweet_id IN ?", tweetIDs).Delete(&TweetMedia{}).Error; err != nil {
				return err
			}
			if err := tx.Where("author_id = ?", uid).Delete(&Tweet{}).Error; err != nil {
				return err
			}
		}

		// Follow edges in both directions, fixing counterparty counters.
		var followedIDs []uint
		if err := tx.Model(&Follow{}).Where("follower_id = ?", uid).Pluck("followed_id", &followedIDs).Error; err != nil {
			return err
		}
		for _, fid := range followedIDs {
			if err := tx.Model(&User{}).Where("id = ? AND followers_count > 0", fid).
				UpdateColumn("followers_count", gorm.Expr("followers_count - 1")).Error; err != nil {
				return err
			}
		}
		var followerIDs []uint
		if err := tx.Model(&Follow{}).Where("followed_id = ?", uid).Pluck("follower_id", &followerIDs).Error; err != nil {
			return err
		}
		for _, fid := range followerIDs {
			if err := tx.Model(&User{}).Where("id = ? AND following_count > 0", fid).
				UpdateColumn("following_count", gorm.Expr("following_count - 1")).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("follower_id = ? OR followed_id = ?", uid, uid).Delete(&Follow{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", uid).Delete(&User{})
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
