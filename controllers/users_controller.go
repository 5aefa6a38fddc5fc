package controllers

import (
	"net/http"
	"strconv"

	"Chirp/models"
	"Chirp/utils/formaterror"

	"github.com/gin-gonic/gin"
)

// CreateUser handles user registration
func (server *Server) CreateUser(c *gin.Context) {
	var user models.User

	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user.Prepare()
	errorMessages := user.Validate("")
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	userCreated, err := user.SaveUser(server.DB)
	if err != nil {
		formattedError := formaterror.FormatError(err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  formattedError,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   http.StatusCreated,
		"response": userCreated,
	})
}

// GetUsers retrieves all users
func (server *Server) GetUsers(c *gin.Context) {
	user := models.User{}

	users, err := user.FindAllUsers(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No users found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": users,
	})
}

// GetUser retrieves a user by ID, with their recent tweets for the profile
// view.
func (server *Server) GetUser(c *gin.Context) {
	uid, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user := models.User{}
	userGotten, err := user.FindUserByID(server.DB, uint(uid))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	tweets, err := userGotten.RecentTweets(server.DB, models.FeedDefaultTake)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading tweets"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"response": gin.H{
			"user":   userGotten,
			"tweets": tweets,
		},
	})
}

// GetUserByUsername resolves a profile by handle. When a block exists
// between the requested profile and the viewer (passed as ?viewer=), the
// profile is deliberately hidden: the response is a 200 with a null body,
// distinct from a genuine 404.
func (server *Server) GetUserByUsername(c *gin.Context) {
	user := models.User{}
	userGotten, err := user.FindUserByUsername(server.DB, c.Param("username"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if viewerParam := c.Query("viewer"); viewerParam != "" {
		viewerID, err := strconv.ParseUint(viewerParam, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid viewer ID"})
			return
		}
		hidden, err := models.BlockExistsBetween(server.DB, uint(viewerID), userGotten.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error resolving user"})
			return
		}
		if hidden {
			c.JSON(http.StatusOK, gin.H{
				"status":   http.StatusOK,
				"response": nil,
			})
			return
		}
	}

	tweets, err := userGotten.RecentTweets(server.DB, models.FeedDefaultTake)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading tweets"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"response": gin.H{
			"user":   userGotten,
			"tweets": tweets,
		},
	})
}

// UpdateUser updates profile fields (name, bio, avatar, email)
func (server *Server) UpdateUser(c *gin.Context) {
	uid, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	existing := models.User{}
	if _, err := existing.FindUserByID(server.DB, uint(uid)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user.Prepare()
	errorMessages := user.Validate("update")
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	updatedUser, err := user.UpdateAUser(server.DB, uint(uid))
	if err != nil {
		formattedError := formaterror.FormatError(err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  formattedError,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": updatedUser,
	})
}

// DeleteUser removes the account and everything it owns in one transaction.
func (server *Server) DeleteUser(c *gin.Context) {
	uid, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user := models.User{}
	if _, err := user.FindUserByID(server.DB, uint(uid)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if _, err := user.DeleteAUser(server.DB, uint(uid)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": "User deleted",
	})
}
