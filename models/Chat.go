package models

import (
	"errors"
	"html"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Chat struct {
	ID        uint         `gorm:"primary_key;autoIncrement" json:"id"`
	Name      string       `gorm:"size:255" json:"name"`
	IsGroup   bool         `gorm:"not null;default:false" json:"is_group"`
	Members   []ChatMember `gorm:"foreignKey:ChatID" json:"members"`
	Messages  []Message    `gorm:"foreignKey:ChatID" json:"messages,omitempty"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time    `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

type ChatMember struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	ChatID    uint      `gorm:"not null;index;uniqueIndex:idx_chat_members_unique" json:"chat_id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_chat_members_unique" json:"user_id"`
	IsAdmin   bool      `gorm:"not null;default:false" json:"is_admin"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// SaveChat creates a chat with its initial member list. The first member is
// the chat admin.
func (ch *Chat) SaveChat(db *gorm.DB, memberIDs []uint) (*Chat, error) {
	if len(memberIDs) < 2 {
		return nil, errors.New("a chat needs at least two members")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, uid := range memberIDs {
			if err := tx.Select("id").First(&User{}, uid).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(ch).Error; err != nil {
			return err
		}
		for i, uid := range memberIDs {
			member := ChatMember{
				ChatID:  ch.ID,
				UserID:  uid,
				IsAdmin: i == 0,
			}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ch.FindChatByID(db, ch.ID)
}

func (ch *Chat) FindChatByID(db *gorm.DB, cid uint) (*Chat, error) {
	var chat Chat
	err := db.Preload("Members").Preload("Members.User").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc, id asc")
		}).
		Preload("Messages.Sender").
		Where("id = ?", cid).Take(&chat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("Chat not found")
		}
		return nil, err
	}
	return &chat, nil
}

// FindUserChats lists the chats a user belongs to, most recently active
// first. Messages are not preloaded here; callers use LastMessage.
func (ch *Chat) FindUserChats(db *gorm.DB, uid uint) ([]Chat, error) {
	var chatIDs []uint
	err := db.Model(&ChatMember{}).Where("user_id = ?", uid).Pluck("chat_id", &chatIDs).Error
	if err != nil {
		return nil, err
	}
	if len(chatIDs) == 0 {
		return []Chat{}, nil
	}

	chats := []Chat{}
	err = db.Preload("Members").Preload("Members.User").
		Where("id IN ?", chatIDs).
		Order("updated_at desc").
		Find(&chats).Error
	if err != nil {
		return nil, err
	}
	return chats, nil
}

// FindOrCreateDirectChat returns the existing one-to-one chat between two
// users, creating it when absent.
func (ch *Chat) FindOrCreateDirectChat(db *gorm.DB, uid1, uid2 uint) (*Chat, error) {
	var chatIDs []uint
	err := db.Model(&ChatMember{}).
		Select("chat_id").
		Where("user_id IN ?", []uint{uid1, uid2}).
		Group("chat_id").
		Having("COUNT(DISTINCT user_id) = 2").
		Pluck("chat_id", &chatIDs).Error
	if err != nil {
		return nil, err
	}

	for _, cid := range chatIDs {
		var chat Chat
		if err := db.Where("id = ? AND is_group = ?", cid, false).Take(&chat).Error; err == nil {
			return ch.FindChatByID(db, chat.ID)
		}
	}

	direct := Chat{IsGroup: false}
	return direct.SaveChat(db, []uint{uid1, uid2})
}

func (ch *Chat) UpdateChatName(db *gorm.DB, cid uint, name string) (*Chat, error) {
	err := db.Model(&Chat{}).Where("id = ?", cid).Updates(map[string]interface{}{
		"name":       html.EscapeString(strings.TrimSpace(name)),
		"updated_at": time.Now(),
	}).Error
	if err != nil {
		return nil, err
	}
	return ch.FindChatByID(db, cid)
}

// DeleteChat removes the chat with its members, messages and message media
// in one transaction.
func (ch *Chat) DeleteChat(db *gorm.DB, cid uint) (int64, error) {
	var rows int64
	err := db.Transaction(func(tx *gorm.DB) error {
		var messageIDs []uint
		if err := tx.Model(&Message{}).Where("chat_id = ?", cid).Pluck("id", &messageIDs).Error; err != nil {
			return err
		}
		if len(messageIDs) > 0 {
			if err := tx.Where("message_id IN ?", messageIDs).Delete(&MessageMedia{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("chat_id = ?", cid).Delete(&Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chat_id = ?", cid).Delete(&ChatMember{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", cid).Delete(&Chat{})
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

func (m *ChatMember) AddMember(db *gorm.DB) (*ChatMember, error) {
	if err := db.Select("id").First(&User{}, m.UserID).Error; err != nil {
		return nil, err
	}
	if err := db.Select("id").First(&Chat{}, m.ChatID).Error; err != nil {
		return nil, err
	}
	err := db.Create(m).Error
	if err != nil {
		return nil, err
	}
	err = db.Preload("User").Where("id = ?", m.ID).Take(m).Error
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ChatMember) RemoveMember(db *gorm.DB, cid, uid uint) (int64, error) {
	result := db.Where("chat_id = ? AND user_id = ?", cid, uid).Delete(&ChatMember{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
