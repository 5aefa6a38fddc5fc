package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Chirp/controllers"
	"Chirp/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer wires a fresh in-memory database behind the full route
// surface so each test exercises the real handlers.
func newTestServer(t *testing.T) (*gin.Engine, *controllers.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.Default()
	server := &controllers.Server{}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}
	server.DB = db
	if err := db.AutoMigrate(
		&models.User{}, &models.Follow{}, &models.Block{}, &models.Mute{},
		&models.Report{}, &models.Tweet{}, &models.TweetMedia{},
		&models.Comment{}, &models.Like{}, &models.Retweet{},
		&models.Bookmark{}, &models.Chat{}, &models.ChatMember{},
		&models.Message{}, &models.MessageMedia{}, &models.Notification{},
	); err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}

	v1 := r.Group("/api/v1")
	{
		v1.POST("/users", server.CreateUser)
		v1.GET("/users", server.GetUsers)
		v1.GET("/users/:id", server.GetUser)
		v1.GET("/users/username/:username", server.GetUserByUsername)
		v1.PATCH("/users/:id", server.UpdateUser)
		v1.DELETE("/users/:id", server.DeleteUser)

		v1.POST("/users/:id/follow/:target_id", server.FollowUser)
		v1.DELETE("/users/:id/follow/:target_id", server.UnfollowUser)
		v1.GET("/users/:id/followers", server.GetFollowers)
		v1.GET("/users/:id/following", server.GetFollowing)
		v1.GET("/users/:id/is-following/:target_id", server.IsFollowingUser)

		v1.POST("/users/:id/block/:target_id", server.BlockUser)
		v1.DELETE("/users/:id/block/:target_id", server.UnblockUser)
		v1.GET("/users/:id/blocks", server.GetBlockedUsers)
		v1.POST("/users/:id/mute/:target_id", server.MuteUser)
		v1.DELETE("/users/:id/mute/:target_id", server.UnmuteUser)
		v1.GET("/users/:id/mutes", server.GetMutedUsers)
		v1.POST("/reports", server.CreateReport)
		v1.GET("/users/:id/reports", server.GetUserReports)

		v1.POST("/tweets", server.CreateTweet)
		v1.GET("/tweets", server.GetTweets)
		v1.GET("/tweets/search", server.SearchTweets)
		v1.GET("/tweets/:id", server.GetTweet)
		v1.GET("/tweets/user/:id", server.GetUserTweets)
		v1.DELETE("/tweets/:id", server.DeleteTweet)
		v1.POST("/tweets/:id/view", server.ViewTweet)

		v1.GET("/tweets/following/:id", server.GetFollowingFeed)
		v1.GET("/tweets/for-you/:id", server.GetForYouFeed)

		v1.POST("/tweets/:id/like", server.LikeTweet)
		v1.POST("/tweets/:id/unlike", server.UnlikeTweet)
		v1.GET("/tweets/:id/likes", server.GetTweetLikes)
		v1.POST("/tweets/:id/retweet", server.RetweetTweet)
		v1.POST("/tweets/:id/unretweet", server.UnretweetTweet)

		v1.POST("/comments", server.CreateComment)
		v1.GET("/comments/tweet/:id", server.GetTweetComments)
		v1.GET("/comments/user/:id", server.GetUserComments)
		v1.PATCH("/comments/:id", server.UpdateComment)
		v1.DELETE("/comments/:id", server.DeleteComment)
		v1.POST("/comments/:id/like", server.LikeComment)
		v1.POST("/comments/:id/unlike", server.UnlikeComment)

		v1.POST("/bookmarks", server.CreateBookmark)
		v1.DELETE("/bookmarks/:user_id/:tweet_id", server.DeleteBookmark)
		v1.GET("/bookmarks/user/:user_id", server.GetUserBookmarks)
		v1.GET("/bookmarks/:user_id/:tweet_id/status", server.GetBookmarkStatus)

		v1.POST("/chats", server.CreateChat)
		v1.POST("/chats/direct", server.GetOrCreateDirectChat)
		v1.GET("/chats/:id", server.GetChat)
		v1.GET("/chats/user/:id", server.GetUserChats)
		v1.PATCH("/chats/:id", server.UpdateChatName)
		v1.DELETE("/chats/:id", server.DeleteChat)
		v1.POST("/chats/:id/messages", server.SendMessage)
		v1.GET("/chats/:id/messages", server.GetChatMessages)
		v1.POST("/chats/:id/members", server.AddChatMember)
		v1.DELETE("/chats/:id/members/:user_id", server.RemoveChatMember)

		v1.GET("/notifications/user/:id", server.GetUserNotifications)
		v1.GET("/notifications/user/:id/unread-count", server.GetUnreadNotificationCount)
		v1.POST("/notifications/:id/read", server.MarkNotificationRead)
		v1.POST("/notifications/user/:id/read-all", server.MarkAllNotificationsRead)
		v1.DELETE("/notifications/:id", server.DeleteNotification)
	}

	return r, server
}

// timeAt returns a deterministic timestamp n seconds after a fixed base,
// so ordering assertions do not depend on the wall clock.
func timeAt(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(n) * time.Second)
}

// seedUser creates a user directly so tests can focus on the operation
// under test.
func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Name:     username,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to seed user %s: %v", username, err)
	}
	return user
}

func seedTweet(t *testing.T, db *gorm.DB, authorID uint, content string, createdAt time.Time) models.Tweet {
	t.Helper()
	tweet := models.Tweet{
		AuthorID:        authorID,
		Content:         content,
		CommentsEnabled: true,
		CreatedAt:       createdAt,
	}
	if err := db.Create(&tweet).Error; err != nil {
		t.Fatalf("Failed to seed tweet: %v", err)
	}
	return tweet
}

func seedFollow(t *testing.T, db *gorm.DB, followerID, followedID uint) {
	t.Helper()
	follow := models.Follow{FollowerID: followerID, FollowedID: followedID}
	if err := db.Create(&follow).Error; err != nil {
		t.Fatalf("Failed to seed follow: %v", err)
	}
}

// doRequest performs one request against the router and decodes the JSON
// body into a generic map.
func doRequest(t *testing.T, r *gin.Engine, method, path string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("Error creating request body: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, body)
	if err != nil {
		t.Fatalf("Error creating HTTP request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	responseBody := map[string]interface{}{}
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &responseBody); err != nil {
			t.Fatalf("Error unmarshalling response body: %v", err)
		}
	}
	return w, responseBody
}

// feedIDs extracts the tweet IDs from a feed response, in order.
func feedIDs(t *testing.T, responseBody map[string]interface{}) []uint {
	t.Helper()
	raw, ok := responseBody["response"].([]interface{})
	if !ok {
		t.Fatalf("Expected a list response, got %T", responseBody["response"])
	}
	ids := make([]uint, 0, len(raw))
	for _, item := range raw {
		tweet := item.(map[string]interface{})
		ids = append(ids, uint(tweet["id"].(float64)))
	}
	return ids
}
