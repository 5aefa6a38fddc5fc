package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

const (
	NotificationTypeLike    = "like"
	NotificationTypeRetweet = "retweet"
	NotificationTypeComment = "comment"
	NotificationTypeFollow  = "follow"
)

type Notification struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	Type      string    `gorm:"size:20;not null;index" json:"type"`
	UserID    uint      `gorm:"not null;index;index:idx_notifications_user_created,priority:1" json:"user_id"`
	ActorID   uint      `gorm:"not null;index" json:"actor_id"`
	Actor     User      `gorm:"foreignKey:ActorID" json:"actor"`
	TweetID   *uint     `gorm:"index" json:"tweet_id,omitempty"`
	CommentID *uint     `json:"comment_id,omitempty"`
	Read      bool      `gorm:"not null;default:false;index" json:"read"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_notifications_user_created,priority:2" json:"created_at"`
}

// SaveNotification records one notification. Self-actions never notify:
// when the actor is the recipient, nothing is written and no error is
// returned. Repeated actions are not deduplicated.
func (n *Notification) SaveNotification(db *gorm.DB) (*Notification, error) {
	if n.UserID == n.ActorID {
		return nil, nil
	}
	err := db.Create(&n).Error
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Notification) FindNotificationByID(db *gorm.DB, nid uint) (*Notification, error) {
	var notification Notification
	err := db.Preload("Actor").Where("id = ?", nid).Take(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("Notification not found")
		}
		return nil, err
	}
	return &notification, nil
}

func (n *Notification) GetUserNotifications(db *gorm.DB, uid uint, skip, take int) (*[]Notification, error) {
	notifications := []Notification{}
	err := db.Preload("Actor").
		Where("user_id = ?", uid).
		Order("created_at desc, id desc").
		Offset(skip).Limit(take).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return &notifications, nil
}

func (n *Notification) UnreadCount(db *gorm.DB, uid uint) (int64, error) {
	var count int64
	err := db.Model(&Notification{}).Where("user_id = ? AND read = ?", uid, false).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MarkRead flips one notification to its terminal read state.
func (n *Notification) MarkRead(db *gorm.DB, nid uint) (*Notification, error) {
	err := db.Model(&Notification{}).Where("id = ?", nid).UpdateColumn("read", true).Error
	if err != nil {
		return nil, err
	}
	return n.FindNotificationByID(db, nid)
}

func (n *Notification) MarkAllRead(db *gorm.DB, uid uint) (int64, error) {
	result := db.Model(&Notification{}).Where("user_id = ? AND read = ?", uid, false).
		UpdateColumn("read", true)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (n *Notification) DeleteNotification(db *gorm.DB, nid uint) (int64, error) {
	result := db.Where("id = ?", nid).Delete(&Notification{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
