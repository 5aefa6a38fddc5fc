package controllers

import (
	"errors"
	"net/http"

	"Chirp/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowUser godoc
// @Summary      Follow a user
// @Description  Create a follow edge from one user to another
// @Tags         follows
// @Produce      json
// @Param        id         path  string  true  "Follower user ID"
// @Param        target_id  path  string  true  "User ID to follow"
// @Success      200  {object}  map[string]interface{}
// @Success      201  {object}  map[string]interface{}
// @Router       /users/{id}/follow/{target_id} [post]
func (server *Server) FollowUser(c *gin.Context) {
	followerID, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	targetID, ok := parseUintParam(c, "target_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	if followerID == targetID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot follow yourself"})
		return
	}

	created := false
	err := server.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.User{}, followerID).Error; err != nil {
			return err
		}
		if err := tx.Select("id").First(&models.User{}, targetID).Error; err != nil {
			return err
		}

		follow := models.Follow{
			FollowerID: followerID,
			FollowedID: targetID,
		}
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		created = true

		if err := tx.Model(&models.User{}).
			Where("id = ?", followerID).
			UpdateColumn("following_count", gorm.Expr("following_count + 1")).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).
			Where("id = ?", targetID).
			UpdateColumn("followers_count", gorm.Expr("followers_count + 1")).Error; err != nil {
			return err
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error following user"})
		return
	}

	if created {
		server.notify(models.NotificationTypeFollow, targetID, followerID, nil, nil)
		c.JSON(http.StatusCreated, gin.H{"status": http.StatusCreated, "response": "User followed successfully"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "Already following user"})
}

// UnfollowUser godoc
// @Summary      Unfollow a user
// @Tags         follows
// @Produce      json
// @Param        id         path  string  true  "Follower user ID"
// @Param        target_id  path  string  true  "User ID to unfollow"
// @Success      200  {object}  map[string]interface{}
// @Router       /users/{id}/follow/{target_id} [delete]
func (server *Server) UnfollowUser(c *gin.Context) {
	followerID, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	targetID, ok := parseUintParam(c, "target_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	if followerID == targetID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot unfollow yourself"})
		return
	}

	err := server.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.User{}, targetID).Error; err != nil {
			return err
		}

		result := tx.Where("follower_id = ? AND followed_id = ?", followerID, targetID).
			Delete(&models.Follow{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		if err := tx.Model(&models.User{}).
			Where("id = ? AND following_count > 0", followerID).
			UpdateColumn("following_count", gorm.Expr("following_count - 1")).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).
			Where("id = ? AND followers_count > 0", targetID).
			UpdateColumn("followers_count", gorm.Expr("followers_count - 1")).Error; err != nil {
			return err
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error unfollowing user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "User unfollowed"})
}

// GetFollowers lists the users following the given user.
func (server *Server) GetFollowers(c *gin.Context) {
	uid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var followerIDs []uint
	err := server.DB.Model(&models.Follow{}).Where("followed_id = ?", uid).
		Pluck("follower_id", &followerIDs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading followers"})
		return
	}

	followers := []models.User{}
	if len(followerIDs) > 0 {
		if err := server.DB.Where("id IN ?", followerIDs).Find(&followers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading followers"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": followers})
}

// GetFollowing lists the users the given user follows.
func (server *Server) GetFollowing(c *gin.Context) {
	uid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	followingIDs, err := models.FollowingUserIDs(server.DB, uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading following"})
		return
	}

	following := []models.User{}
	if len(followingIDs) > 0 {
		if err := server.DB.Where("id IN ?", followingIDs).Find(&following).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading following"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": following})
}

func (server *Server) IsFollowingUser(c *gin.Context) {
	uid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	targetID, ok := parseUintParam(c, "target_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	following, err := models.IsFollowing(server.DB, uid, targetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking follow state"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": gin.H{"is_following": following},
	})
}
