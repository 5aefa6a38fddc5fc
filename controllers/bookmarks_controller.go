package controllers

import (
	"net/http"

	"Chirp/models"

	"github.com/gin-gonic/gin"
)

type bookmarkRequest struct {
	UserID  uint `json:"user_id"`
	TweetID uint `json:"tweet_id"`
}

func (server *Server) CreateBookmark(c *gin.Context) {
	var req bookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 || req.TweetID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user or tweet ID"})
		return
	}

	if !server.userExists(req.UserID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	tweet := models.Tweet{}
	if _, err := tweet.FindTweetByID(server.DB, req.TweetID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tweet not found"})
		return
	}

	bookmark := models.Bookmark{UserID: req.UserID, TweetID: req.TweetID}
	created, err := bookmark.SaveBookmark(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving bookmark"})
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "Already bookmarked"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": http.StatusCreated, "response": "Tweet bookmarked"})
}

func (server *Server) DeleteBookmark(c *gin.Context) {
	uid, ok := parseUintParam(c, "user_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	tid, ok := parseUintParam(c, "tweet_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tweet ID"})
		return
	}

	bookmark := models.Bookmark{}
	removed, err := bookmark.DeleteBookmark(server.DB, uid, tid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing bookmark"})
		return
	}
	if removed == 0 {
		c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "Not bookmarked"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "Bookmark removed"})
}

func (server *Server) GetUserBookmarks(c *gin.Context) {
	uid, ok := parseUintParam(c, "user_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	skip, take, ok := parsePagination(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}

	bookmark := models.Bookmark{}
	bookmarks, err := bookmark.GetUserBookmarks(server.DB, uid, skip, take)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading bookmarks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": bookmarks})
}

func (server *Server) GetBookmarkStatus(c *gin.Context) {
	uid, ok := parseUintParam(c, "user_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	tid, ok := parseUintParam(c, "tweet_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tweet ID"})
		return
	}

	bookmark := models.Bookmark{}
	bookmarked, err := bookmark.IsBookmarked(server.DB, uid, tid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking bookmark"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": gin.H{"bookmarked": bookmarked}})
}
