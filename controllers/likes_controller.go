package controllers

import (
	"net/http"

	"Chirp/models"

	"github.com/gin-gonic/gin"
)

type engagementRequest struct {
	ActorID uint `json:"actor_id"`
}

// LikeTweet godoc
// @Summary Like a tweet
// @Description Idempotent: liking an already-liked tweet is a no-op.
// @Tags likes
// @Accept json
// @Produce json
// @Param id path int true "Tweet ID"
// @Success 201 {object} map[string]interface{}
// @Router /api/v1/tweets/{id}/like [post]
func (server *Server) LikeTweet(c *gin.Context) {
	tid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tweet ID"})
		return
	}
	var req engagementRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ActorID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing actor ID"})
		return
	}

	if !server.userExists(req.ActorID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	tweet := models.Tweet{}
	found, err := tweet.FindTweetByID(server.DB, tid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tweet not found"})
		return
	}

	like := models.Like{UserID: req.ActorID, TweetID: tid}
	created, err := like.SaveLike(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error liking tweet"})
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "Already liked"})
		return
	}

	server.notify(models.NotificationTypeLike, found.AuthorID, req.ActorID, &found.ID, nil)

	c.JSON(http.StatusCreated, gin.H{"status": http.StatusCreated, "response": "Tweet liked"})
}

// UnlikeTweet godoc
// @Summary Remove a like
// @Tags likes
// @Accept json
// @Produce json
// @Param id path int true "Tweet ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/tweets/{id}/unlike [post]
func (server *Server) UnlikeTweet(c *gin.Context) {
	tid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tweet ID"})
		return
	}
	var req engagementRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ActorID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing actor ID"})
		return
	}

	like := models.Like{UserID: req.ActorID, TweetID: tid}
	removed, err := like.DeleteLike(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error unliking tweet"})
		return
	}
	if !removed {
		c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "Not liked"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "Tweet unliked"})
}

func (server *Server) GetTweetLikes(c *gin.Context) {
	tid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tweet ID"})
		return
	}

	like := models.Like{}
	likes, err := like.GetTweetLikes(server.DB, tid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading likes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": likes})
}

func (server *Server) RetweetTweet(c *gin.Context) {
	tid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tweet ID"})
		return
	}
	var req engagementRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ActorID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing actor ID"})
		return
	}

	if !server.userExists(req.ActorID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	tweet := models.Tweet{}
	found, err := tweet.FindTweetByID(server.DB, tid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tweet not found"})
		return
	}

	retweet := models.Retweet{UserID: req.ActorID, TweetID: tid}
	created, err := retweet.SaveRetweet(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retweeting"})
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "Already retweeted"})
		return
	}

	server.notify(models.NotificationTypeRetweet, found.AuthorID, req.ActorID, &found.ID, nil)

	c.JSON(http.StatusCreated, gin.H{"status": http.StatusCreated, "response": "Tweet retweeted"})
}

func (server *Server) UnretweetTweet(c *gin.Context) {
	tid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tweet ID"})
		return
	}
	var req engagementRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ActorID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing actor ID"})
		return
	}

	retweet := models.Retweet{UserID: req.ActorID, TweetID: tid}
	removed, err := retweet.DeleteRetweet(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing retweet"})
		return
	}
	if !removed {
		c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "Not retweeted"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "Retweet removed"})
}
