package controllers

import (
	"net/http"

	"Chirp/models"

	"github.com/gin-gonic/gin"
)

// CreateComment posts a reply on a tweet. Replies are rejected when the
// tweet's author has turned comments off.
func (server *Server) CreateComment(c *gin.Context) {
	comment := models.Comment{}
	if err := c.ShouldBindJSON(&comment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment.Prepare()
	errorMessages := comment.Validate()
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	if !server.userExists(comment.AuthorID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	tweet := models.Tweet{}
	found, err := tweet.FindTweetByID(server.DB, comment.TweetID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tweet not found"})
		return
	}
	if !found.CommentsEnabled {
		c.JSON(http.StatusForbidden, gin.H{"error": "Comments are disabled for this tweet"})
		return
	}

	created, err := comment.SaveComment(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating comment"})
		return
	}

	server.notify(models.NotificationTypeComment, found.AuthorID, created.AuthorID, &found.ID, &created.ID)

	c.JSON(http.StatusCreated, gin.H{"status": http.StatusCreated, "response": created})
}

func (server *Server) GetTweetComments(c *gin.Context) {
	tid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tweet ID"})
		return
	}
	skip, take, ok := parsePagination(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}

	comment := models.Comment{}
	comments, err := comment.GetTweetComments(server.DB, tid, skip, take)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": comments})
}

func (server *Server) GetUserComments(c *gin.Context) {
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

	comment := models.Comment{}
	comments, err := comment.GetUserComments(server.DB, uid, skip, take)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": comments})
}

func (server *Server) UpdateComment(c *gin.Context) {
	cid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	existing := models.Comment{}
	if _, err := existing.FindCommentByID(server.DB, cid); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	comment := models.Comment{}
	if err := c.ShouldBindJSON(&comment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment.Prepare()
	comment.ID = cid
	if comment.Content == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  map[string]string{"Required_content": "Content is required"},
		})
		return
	}

	updated, err := comment.UpdateAComment(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": updated})
}

func (server *Server) DeleteComment(c *gin.Context) {
	cid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	comment := models.Comment{}
	if _, err := comment.FindCommentByID(server.DB, cid); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	comment.ID = cid
	if _, err := comment.DeleteAComment(server.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "Comment deleted"})
}

func (server *Server) LikeComment(c *gin.Context) {
	cid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	comment := models.Comment{}
	if _, err := comment.FindCommentByID(server.DB, cid); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if err := comment.IncrementLikes(server.DB, cid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error liking comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "Comment liked"})
}

func (server *Server) UnlikeComment(c *gin.Context) {
	cid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	comment := models.Comment{}
	if _, err := comment.FindCommentByID(server.DB, cid); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if err := comment.DecrementLikes(server.DB, cid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error unliking comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "Comment unliked"})
}
