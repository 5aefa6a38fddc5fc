package controllers

import (
	"errors"
	"net/http"

	"Chirp/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlockUser creates a block edge and removes any follow relationship in
// both directions. The block and the follow removal commit together; no
// state where both a block and a follow edge exist can be observed.
func (server *Server) BlockUser(c *gin.Context) {
	blockerID, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	blockedID, ok := parseUintParam(c, "target_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	if blockerID == blockedID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot block yourself"})
		return
	}

	created := false
	err := server.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.User{}, blockerID).Error; err != nil {
			return err
		}
		if err := tx.Select("id").First(&models.User{}, blockedID).Error; err != nil {
			return err
		}

		block := models.Block{
			BlockerID: blockerID,
			BlockedID: blockedID,
		}
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&block)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		created = true

		// Tear down follow edges both ways, keeping counters in step.
		pairs := [][2]uint{{blockerID, blockedID}, {blockedID, blockerID}}
		for _, pair := range pairs {
			res := tx.Where("follower_id = ? AND followed_id = ?", pair[0], pair[1]).
				Delete(&models.Follow{})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				continue
			}
			if err := tx.Model(&models.User{}).
				Where("id = ? AND following_count > 0", pair[0]).
				UpdateColumn("following_count", gorm.Expr("following_count - 1")).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.User{}).
				Where("id = ? AND followers_count > 0", pair[1]).
				UpdateColumn("followers_count", gorm.Expr("followers_count - 1")).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error blocking user"})
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{"status": http.StatusCreated, "response": "User blocked"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "Already blocked"})
}

func (server *Server) UnblockUser(c *gin.Context) {
	blockerID, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	blockedID, ok := parseUintParam(c, "target_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	result := server.DB.Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&models.Block{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error unblocking user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "User unblocked"})
}

// GetBlockedUsers lists the users this user has blocked (one direction;
// being blocked by others is not exposed here).
func (server *Server) GetBlockedUsers(c *gin.Context) {
	uid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var blockedIDs []uint
	err := server.DB.Model(&models.Block{}).Where("blocker_id = ?", uid).
		Pluck("blocked_id", &blockedIDs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading blocks"})
		return
	}

	blocked := []models.User{}
	if len(blockedIDs) > 0 {
		if err := server.DB.Where("id IN ?", blockedIDs).Find(&blocked).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading blocks"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": blocked})
}
