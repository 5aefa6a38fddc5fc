package controllers

import (
	"net/http"
	"strings"

	"Chirp/models"
	"Chirp/responses"

	"github.com/gin-gonic/gin"
)

type chatCreateRequest struct {
	Name      string `json:"name"`
	IsGroup   bool   `json:"is_group"`
	MemberIDs []uint `json:"member_ids"`
}

type directChatRequest struct {
	UserID  uint `json:"user_id"`
	OtherID uint `json:"other_id"`
}

type messageCreateRequest struct {
	SenderID  uint     `json:"sender_id"`
	Content   string   `json:"content"`
	MediaURLs []string `json:"media_urls"`
}

func (server *Server) CreateChat(c *gin.Context) {
	var req chatCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.MemberIDs) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A chat needs at least two members"})
		return
	}

	chat := models.Chat{
		Name:    strings.TrimSpace(req.Name),
		IsGroup: req.IsGroup,
	}
	created, err := chat.SaveChat(server.DB, req.MemberIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating chat"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": http.StatusCreated, "response": created})
}

// GetOrCreateDirectChat resolves the one-to-one chat between two users,
// creating it on first contact.
func (server *Server) GetOrCreateDirectChat(c *gin.Context) {
	var req directChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 || req.OtherID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both user IDs are required"})
		return
	}
	if req.UserID == req.OtherID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot open a chat with yourself"})
		return
	}

	chat := models.Chat{}
	found, err := chat.FindOrCreateDirectChat(server.DB, req.UserID, req.OtherID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error resolving chat"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": found})
}

func (server *Server) GetChat(c *gin.Context) {
	cid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat ID"})
		return
	}

	chat := models.Chat{}
	found, err := chat.FindChatByID(server.DB, cid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": found})
}

// GetUserChats lists a user's chats, most recently active first, each with
// its latest message attached.
func (server *Server) GetUserChats(c *gin.Context) {
	uid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	chat := models.Chat{}
	chats, err := chat.FindUserChats(server.DB, uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading chats"})
		return
	}

	message := models.Message{}
	listings := make([]responses.ChatListing, 0, len(chats))
	for i := range chats {
		last, err := message.LastMessage(server.DB, chats[i].ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading chats"})
			return
		}
		listings = append(listings, responses.ChatListing{Chat: chats[i], LastMessage: last})
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": listings})
}

func (server *Server) UpdateChatName(c *gin.Context) {
	cid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat ID"})
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	chat := models.Chat{}
	if _, err := chat.FindChatByID(server.DB, cid); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
		return
	}

	updated, err := chat.UpdateChatName(server.DB, cid, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating chat"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": updated})
}

func (server *Server) DeleteChat(c *gin.Context) {
	cid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat ID"})
		return
	}

	chat := models.Chat{}
	rows, err := chat.DeleteChat(server.DB, cid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting chat"})
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "Chat deleted"})
}

func (server *Server) SendMessage(c *gin.Context) {
	cid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat ID"})
		return
	}

	var req messageCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message := models.Message{
		ChatID:   cid,
		SenderID: req.SenderID,
		Content:  req.Content,
	}
	message.Prepare()
	errorMessages := message.Validate()
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	created, err := message.SaveMessage(server.DB, req.MediaURLs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": http.StatusCreated, "response": created})
}

func (server *Server) GetChatMessages(c *gin.Context) {
	cid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat ID"})
		return
	}
	skip, take, ok := parsePagination(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}

	chat := models.Chat{}
	if _, err := chat.FindChatByID(server.DB, cid); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
		return
	}

	message := models.Message{}
	messages, err := message.GetChatMessages(server.DB, cid, skip, take)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": messages})
}

func (server *Server) AddChatMember(c *gin.Context) {
	cid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat ID"})
		return
	}

	var req struct {
		UserID  uint `json:"user_id"`
		IsAdmin bool `json:"is_admin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user ID"})
		return
	}

	member := models.ChatMember{ChatID: cid, UserID: req.UserID, IsAdmin: req.IsAdmin}
	added, err := member.AddMember(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding member"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": http.StatusCreated, "response": added})
}

func (server *Server) RemoveChatMember(c *gin.Context) {
	cid, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat ID"})
		return
	}
	uid, ok := parseUintParam(c, "user_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	member := models.ChatMember{}
	rows, err := member.RemoveMember(server.DB, cid, uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing member"})
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": "Member removed"})
}
