package controllers

import (
	"net/http"

	"Chirp/models"

	"github.com/gin-gonic/gin"
)

func (server *Server) GetUserNotifications(c *gin.Context) {
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

	notification := models.Notification{}
	notifications, err := notification.GetUserNotifications(server.DB, uid, skip, take)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": notifications})
}

// GetUnreadNotificationCount serves the badge counter. It reads through a
// short-lived Redis entry; misses fall back to the database.
func (server *Server) GetUnreadNotificationCount(c *gin.Context) {
	uid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if count, hit := cachedUnreadCount(uid); hit {
		c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": gin.H{"unread_count": count}})
		return
	}

	notification := models.Notification{}
	count, err := notification.UnreadCount(server.DB, uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting notifications"})
		return
	}
	storeUnreadCount(uid, count)

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": gin.H{"unread_count": count}})
}

func (server *Server) MarkNotificationRead(c *gin.Context) {
	nid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	notification := models.Notification{}
	found, err := notification.FindNotificationByID(server.DB, nid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	updated, err := notification.MarkRead(server.DB, nid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating notification"})
		return
	}
	invalidateUnreadCountCache(found.UserID)

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": updated})
}

func (server *Server) MarkAllNotificationsRead(c *gin.Context) {
	uid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	notification := models.Notification{}
	rows, err := notification.MarkAllRead(server.DB, uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating notifications"})
		return
	}
	invalidateUnreadCountCache(uid)

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": gin.H{"marked_read": rows}})
}

func (server *Server) DeleteNotification(c *gin.Context) {
	nid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	notification := models.Notification{}
	found, err := notification.FindNotificationByID(server.DB, nid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	if _, err := notification.DeleteNotification(server.DB, nid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting notification"})
		return
	}
	invalidateUnreadCountCache(found.UserID)

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "Notification deleted"})
}
