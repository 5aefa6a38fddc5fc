package controllers

import (
	"errors"
	"net/http"

	"Chirp/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MuteUser records a mute edge. Mutes are metadata only: they do not touch
// follow state and do not filter feed content.
func (server *Server) MuteUser(c *gin.Context) {
	muterID, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	mutedID, ok := parseUintParam(c, "target_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	if muterID == mutedID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot mute yourself"})
		return
	}

	if !server.userExists(muterID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err := server.DB.Select("id").First(&models.User{}, mutedID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error muting user"})
		return
	}

	mute := models.Mute{MuterID: muterID, MutedID: mutedID}
	result := server.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&mute)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error muting user"})
		return
	}

	if result.RowsAffected > 0 {
		c.JSON(http.StatusCreated, gin.H{"status": http.StatusCreated, "response": "User muted"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "Already muted"})
}

func (server *Server) UnmuteUser(c *gin.Context) {
	muterID, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	mutedID, ok := parseUintParam(c, "target_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	result := server.DB.Where("muter_id = ? AND muted_id = ?", muterID, mutedID).
		Delete(&models.Mute{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error unmuting user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "User unmuted"})
}

func (server *Server) GetMutedUsers(c *gin.Context) {
	uid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var mutedIDs []uint
	err := server.DB.Model(&models.Mute{}).Where("muter_id = ?", uid).
		Pluck("muted_id", &mutedIDs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading mutes"})
		return
	}

	muted := []models.User{}
	if len(mutedIDs) > 0 {
		if err := server.DB.Where("id IN ?", mutedIDs).Find(&muted).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading mutes"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": muted})
}
