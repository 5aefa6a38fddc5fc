package tests

import (
	"fmt"
	"net/http"
	"testing"

	"Chirp/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateChat(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")
	bob := seedUser(t, server.DB, "bob")
	carol := seedUser(t, server.DB, "carol")

	w, responseBody := doRequest(t, r, http.MethodPost, "/api/v1/chats", map[string]interface{}{
		"name":       "weekend plans",
		"is_group":   true,
		"member_ids": []uint{alice.ID, bob.ID, carol.ID},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	chat := responseBody["response"].(map[string]interface{})
	members := chat["members"].([]interface{})
	assert.Len(t, members, 3)

	// The first member is the admin
	first := members[0].(map[string]interface{})
	assert.True(t, first["is_admin"].(bool))
	second := members[1].(map[string]interface{})
	assert.False(t, second["is_admin"].(bool))
}

func TestCreateChatRequiresTwoMembers(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")

	w, _ := doRequest(t, r, http.MethodPost, "/api/v1/chats", map[string]interface{}{
		"member_ids": []uint{alice.ID},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDirectChatFindOrCreate(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")
	bob := seedUser(t, server.DB, "bob")

	payload := map[string]uint{"user_id": alice.ID, "other_id": bob.ID}

	w, responseBody := doRequest(t, r, http.MethodPost, "/api/v1/chats/direct", payload)
	assert.Equal(t, http.StatusOK, w.Code)
	firstID := responseBody["response"].(map[string]interface{})["id"].(float64)

	// Asking again, from either side, resolves to the same chat
	w, responseBody = doRequest(t, r, http.MethodPost, "/api/v1/chats/direct",
		map[string]uint{"user_id": bob.ID, "other_id": alice.ID})
	assert.Equal(t, http.StatusOK, w.Code)
	secondID := responseBody["response"].(map[string]interface{})["id"].(float64)
	assert.Equal(t, firstID, secondID)

	var count int64
	server.DB.Model(&models.Chat{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDirectChatWithSelfRejected(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")

	w, _ := doRequest(t, r, http.MethodPost, "/api/v1/chats/direct",
		map[string]uint{"user_id": alice.ID, "other_id": alice.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendMessage(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")
	bob := seedUser(t, server.DB, "bob")

	_, responseBody := doRequest(t, r, http.MethodPost, "/api/v1/chats/direct",
		map[string]uint{"user_id": alice.ID, "other_id": bob.ID})
	chatID := uint(responseBody["response"].(map[string]interface{})["id"].(float64))

	w, responseBody := doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/chats/%d/messages", chatID),
		map[string]interface{}{
			"sender_id":  alice.ID,
			"content":    "hey bob",
			"media_urls": []string{"https://cdn.example.com/pic.jpg"},
		})
	assert.Equal(t, http.StatusCreated, w.Code)

	message := responseBody["response"].(map[string]interface{})
	assert.Equal(t, "hey bob", message["content"])
	assert.NotEmpty(t, message["public_id"], "Every message gets a public UUID")
	media := message["media"].([]interface{})
	assert.Len(t, media, 1)
	assert.Equal(t, "image", media[0].(map[string]interface{})["media_type"])
}

func TestSendMessageRequiresMembership(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")
	bob := seedUser(t, server.DB, "bob")
	mallory := seedUser(t, server.DB, "mallory")

	_, responseBody := doRequest(t, r, http.MethodPost, "/api/v1/chats/direct",
		map[string]uint{"user_id": alice.ID, "other_id": bob.ID})
	chatID := uint(responseBody["response"].(map[string]interface{})["id"].(float64))

	w, _ := doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/chats/%d/messages", chatID),
		map[string]interface{}{"sender_id": mallory.ID, "content": "let me in"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var count int64
	server.DB.Model(&models.Message{}).Count(&count)
	assert.Zero(t, count)
}

func TestUserChatsOrderedByActivity(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")
	bob := seedUser(t, server.DB, "bob")
	carol := seedUser(t, server.DB, "carol")

	_, responseBody := doRequest(t, r, http.MethodPost, "/api/v1/chats/direct",
		map[string]uint{"user_id": alice.ID, "other_id": bob.ID})
	bobChatID := uint(responseBody["response"].(map[string]interface{})["id"].(float64))
	_, responseBody = doRequest(t, r, http.MethodPost, "/api/v1/chats/direct",
		map[string]uint{"user_id": alice.ID, "other_id": carol.ID})
	carolChatID := uint(responseBody["response"].(map[string]interface{})["id"].(float64))

	// Writing into the older chat bumps it back to the top
	doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/chats/%d/messages", bobChatID),
		map[string]interface{}{"sender_id": alice.ID, "content": "ping"})

	w, responseBody := doRequest(t, r, http.MethodGet,
		fmt.Sprintf("/api/v1/chats/user/%d", alice.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	chats := responseBody["response"].([]interface{})
	assert.Len(t, chats, 2)
	top := chats[0].(map[string]interface{})
	assert.Equal(t, float64(bobChatID), top["id"])
	lastMessage := top["last_message"].(map[string]interface{})
	assert.Equal(t, "ping", lastMessage["content"])

	bottom := chats[1].(map[string]interface{})
	assert.Equal(t, float64(carolChatID), bottom["id"])
	assert.Nil(t, bottom["last_message"], "A silent chat has no last message")
}

func TestChatMembers(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")
	bob := seedUser(t, server.DB, "bob")
	carol := seedUser(t, server.DB, "carol")

	_, responseBody := doRequest(t, r, http.MethodPost, "/api/v1/chats", map[string]interface{}{
		"name":       "trio",
		"is_group":   true,
		"member_ids": []uint{alice.ID, bob.ID},
	})
	chatID := uint(responseBody["response"].(map[string]interface{})["id"].(float64))

	w, _ := doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/chats/%d/members", chatID),
		map[string]interface{}{"user_id": carol.ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	w, _ = doRequest(t, r, http.MethodDelete,
		fmt.Sprintf("/api/v1/chats/%d/members/%d", chatID, bob.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	server.DB.Model(&models.ChatMember{}).Where("chat_id = ?", chatID).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestDeleteChatRemovesMessages(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")
	bob := seedUser(t, server.DB, "bob")

	_, responseBody := doRequest(t, r, http.MethodPost, "/api/v1/chats/direct",
		map[string]uint{"user_id": alice.ID, "other_id": bob.ID})
	chatID := uint(responseBody["response"].(map[string]interface{})["id"].(float64))

	doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/chats/%d/messages", chatID),
		map[string]interface{}{"sender_id": alice.ID, "content": "bye"})

	w, _ := doRequest(t, r, http.MethodDelete,
		fmt.Sprintf("/api/v1/chats/%d", chatID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	server.DB.Model(&models.Message{}).Count(&count)
	assert.Zero(t, count)
	server.DB.Model(&models.ChatMember{}).Count(&count)
	assert.Zero(t, count)
}
