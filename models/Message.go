package models

import (
	"errors"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Message struct {
	ID        uint           `gorm:"primary_key;autoIncrement" json:"id"`
	PublicID  string         `gorm:"type:uuid;uniqueIndex;column:public_id" json:"public_id"`
	ChatID    uint           `gorm:"not null;index;index:idx_messages_chat_created,priority:1" json:"chat_id"`
	SenderID  uint           `gorm:"not null;index" json:"sender_id"`
	Sender    User           `gorm:"foreignKey:SenderID" json:"sender"`
	Content   string         `gorm:"size:2000;not null" json:"content"`
	Media     []MessageMedia `gorm:"foreignKey:MessageID" json:"media"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index:idx_messages_chat_created,priority:2" json:"created_at"`
}

type MessageMedia struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	MessageID uint      `gorm:"not null;index" json:"message_id"`
	MediaURL  string    `gorm:"size:500;not null" json:"media_url"`
	MediaType string    `gorm:"size:20;not null" json:"media_type"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

var imageURLPattern = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp)$`)

func (m *Message) BeforeCreate(tx *gorm.DB) (err error) {
	if strings.TrimSpace(m.PublicID) == "" {
		m.PublicID = uuid.NewString()
	}
	return nil
}

func (m *Message) Prepare() {
	m.ID = 0
	m.Content = html.EscapeString(strings.TrimSpace(m.Content))
	m.Sender = User{}
	m.CreatedAt = time.Now()
}

func (m *Message) Validate() map[string]string {
	var errorMessages = make(map[string]string)

	if m.Content == "" {
		errorMessages["Required_content"] = "Content is required"
	}
	if m.ChatID == 0 {
		errorMessages["Required_chat"] = "Chat is required"
	}
	if m.SenderID == 0 {
		errorMessages["Required_sender"] = "Sender is required"
	}
	return errorMessages
}

// SaveMessage stores the message with any media and touches the chat's
// updated_at so chat listings sort by recent activity.
func (m *Message) SaveMessage(db *gorm.DB, mediaURLs []string) (*Message, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&Chat{}, m.ChatID).Error; err != nil {
			return err
		}
		var member ChatMember
		if err := tx.Where("chat_id = ? AND user_id = ?", m.ChatID, m.SenderID).Take(&member).Error; err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		for _, url := range mediaURLs {
			mediaType := "file"
			trimmed := strings.TrimSpace(url)
			if strings.HasPrefix(trimmed, "data:image") || imageURLPattern.MatchString(trimmed) {
				mediaType = "image"
			}
			media := MessageMedia{
				MessageID: m.ID,
				MediaURL:  trimmed,
				MediaType: mediaType,
			}
			if err := tx.Create(&media).Error; err != nil {
				return err
			}
		}
		return tx.Model(&Chat{}).Where("id = ?", m.ChatID).
			UpdateColumn("updated_at", time.Now()).Error
	})
	if err != nil {
		return nil, err
	}

	err = db.Preload("Sender").Preload("Media").Where("id = ?", m.ID).Take(m).Error
	if err != nil {
		return nil, err
	}
	return m, nil
}

// GetChatMessages returns a chat's messages oldest first.
func (m *Message) GetChatMessages(db *gorm.DB, cid uint, skip, take int) (*[]Message, error) {
	messages := []Message{}
	err := db.Preload("Sender").Preload("Media").
		Where("chat_id = ?", cid).
		Order("created_at asc, id asc").
		Offset(skip).Limit(take).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return &messages, nil
}

// LastMessage returns the most recent message in a chat, or nil when the
// chat is empty.
func (m *Message) LastMessage(db *gorm.DB, cid uint) (*Message, error) {
	var message Message
	err := db.Preload("Sender").
		Where("chat_id = ?", cid).
		Order("created_at desc, id desc").
		First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}
