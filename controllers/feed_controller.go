package controllers

import (
	"net/http"

	"Chirp/models"

	"github.com/gin-gonic/gin"
)

// GetFollowingFeed godoc
// @Summary Following timeline
// @Description Tweets from accounts the viewer follows, plus the viewer's own,
// @Description excluding anyone in a block relationship with the viewer.
// @Tags feed
// @Produce json
// @Param id path int true "Viewer ID"
// @Param skip query int false "Offset"
// @Param take query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/tweets/following/{id} [get]
func (server *Server) GetFollowingFeed(c *gin.Context) {
	viewerID, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid viewer ID"})
		return
	}
	skip, take, ok := parsePagination(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}

	tweets, err := models.FollowingFeed(server.DB, viewerID, skip, take)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": tweets})
}

// GetForYouFeed godoc
// @Summary Discovery timeline
// @Description Tweets from accounts the viewer does not follow, plus the
// @Description viewer's own, excluding anyone in a block relationship.
// @Tags feed
// @Produce json
// @Param id path int true "Viewer ID"
// @Param skip query int false "Offset"
// @Param take query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/tweets/for-you/{id} [get]
func (server *Server) GetForYouFeed(c *gin.Context) {
	viewerID, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid viewer ID"})
		return
	}
	skip, take, ok := parsePagination(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}

	tweets, err := models.ForYouFeed(server.DB, viewerID, skip, take)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": tweets})
}
