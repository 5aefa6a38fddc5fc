package controllers

import (
	"strconv"

	"Chirp/models"

	"github.com/gin-gonic/gin"
)

// parsePagination reads skip/take query params. Non-numeric input is a
// client error; negative values fall back to the defaults; take is capped,
// and a take of zero falls back to the default rather than an empty page.
func parsePagination(c *gin.Context) (int, int, bool) {
	skipParam := c.DefaultQuery("skip", strconv.Itoa(models.FeedDefaultSkip))
	takeParam := c.DefaultQuery("take", strconv.Itoa(models.FeedDefaultTake))

	skip, err := strconv.Atoi(skipParam)
	if err != nil {
		return 0, 0, false
	}
	take, err := strconv.Atoi(takeParam)
	if err != nil {
		return 0, 0, false
	}

	if skip < 0 {
		skip = models.FeedDefaultSkip
	}
	if take <= 0 {
		take = models.FeedDefaultTake
	}
	if take > models.FeedMaxTake {
		take = models.FeedMaxTake
	}
	return skip, take, true
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(value), true
}
