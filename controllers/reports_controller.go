package controllers

import (
	"net/http"

	"Chirp/models"

	"github.com/gin-gonic/gin"
)

func (server *Server) CreateReport(c *gin.Context) {
	var report models.Report

	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report.Prepare()
	errorMessages := report.Validate()
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	if !server.userExists(report.ReporterID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user := models.User{}
	if _, err := user.FindUserByID(server.DB, report.ReportedID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	created, err := report.SaveReport(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating report"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   http.StatusCreated,
		"response": created,
	})
}

func (server *Server) GetUserReports(c *gin.Context) {
	uid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	report := models.Report{}
	reports, err := report.ReportsAgainstUser(server.DB, uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": reports})
}
