package controllers

import (
	"net/http"
	"strings"

	"Chirp/models"

	"github.com/gin-gonic/gin"
)

type TweetCreateRequest struct {
	Content         string   `json:"content"`
	AuthorID        uint     `json:"author_id"`
	MediaURLs       []string `json:"media_urls"`
	CommentsEnabled *bool    `json:"comments_enabled"`
	Location        string   `json:"location"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}

// CreateTweet posts a new tweet with optional media attachments.
func (server *Server) CreateTweet(c *gin.Context) {
	var req TweetCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tweet := models.Tweet{
		Content:         req.Content,
		AuthorID:        req.AuthorID,
		CommentsEnabled: true,
		Location:        strings.TrimSpace(req.Location),
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	}
	if req.CommentsEnabled != nil {
		tweet.CommentsEnabled = *req.CommentsEnabled
	}

	tweet.Prepare()
	errorMessages := tweet.Validate()
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	created, err := tweet.SaveTweet(server.DB, req.MediaURLs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating tweet"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   http.StatusCreated,
		"response": created,
	})
}

// GetTweets is the unauthenticated listing: all tweets, newest first.
func (server *Server) GetTweets(c *gin.Context) {
	skip, take, ok := parsePagination(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}

	tweet := models.Tweet{}
	tweets, err := tweet.FindAllTweets(server.DB, skip, take)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading tweets"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": tweets})
}

func (server *Server) GetTweet(c *gin.Context) {
	tid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tweet ID"})
		return
	}

	tweet := models.Tweet{}
	found, err := tweet.FindTweetByID(server.DB, tid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tweet not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": found})
}

func (server *Server) GetUserTweets(c *gin.Context) {
	uid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	skip, take, ok := parsePagination(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}

	tweet := models.Tweet{}
	tweets, err := tweet.FindTweetsByAuthor(server.DB, uid, skip, take)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading tweets"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": tweets})
}

func (server *Server) SearchTweets(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing search query"})
		return
	}
	skip, take, ok := parsePagination(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}

	tweet := models.Tweet{}
	tweets, err := tweet.SearchTweets(server.DB, query, skip, take)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error searching tweets"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": tweets})
}

func (server *Server) ViewTweet(c *gin.Context) {
	tid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tweet ID"})
		return
	}

	tweet := models.Tweet{}
	if _, err := tweet.FindTweetByID(server.DB, tid); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tweet not found"})
		return
	}

	if err := tweet.IncrementViews(server.DB, tid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating views"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "View counted"})
}

func (server *Server) DeleteTweet(c *gin.Context) {
	tid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tweet ID"})
		return
	}

	tweet := models.Tweet{}
	if _, err := tweet.FindTweetByID(server.DB, tid); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tweet not found"})
		return
	}

	if _, err := tweet.DeleteTweet(server.DB, tid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting tweet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "Tweet deleted"})
}
