package tests

import (
	"fmt"
	"net/http"
	"testing"

	"Chirp/models"

	"github.com/stretchr/testify/assert"
)

func TestLikeUnknownActor(t *testing.T) {
	r, server := newTestServer(t)

	bob := seedUser(t, server.DB, "bob")
	tweet := seedTweet(t, server.DB, bob.ID, "like me", timeAt(1))

	w, _ := doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/tweets/%d/like", tweet.ID),
		map[string]uint{"actor_id": 9999})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/tweets/%d/retweet", tweet.ID),
		map[string]uint{"actor_id": 9999})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Neither an edge nor a notification may be written for a user that
	// does not exist.
	var likes, retweets, notifications int64
	server.DB.Model(&models.Like{}).Count(&likes)
	server.DB.Model(&models.Retweet{}).Count(&retweets)
	server.DB.Model(&models.Notification{}).Count(&notifications)
	assert.Zero(t, likes)
	assert.Zero(t, retweets)
	assert.Zero(t, notifications)

	var reloaded models.Tweet
	server.DB.First(&reloaded, tweet.ID)
	assert.Zero(t, reloaded.LikeCount)
	assert.Zero(t, reloaded.RetweetCount)
}

func TestLikeTweet(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")
	bob := seedUser(t, server.DB, "bob")
	tweet := seedTweet(t, server.DB, bob.ID, "like me", timeAt(1))

	w, _ := doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/tweets/%d/like", tweet.ID),
		map[string]uint{"actor_id": alice.ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	var reloaded models.Tweet
	server.DB.First(&reloaded, tweet.ID)
	assert.Equal(t, int64(1), reloaded.LikeCount)

	// Re-liking is a no-op on both edge and counter
	w, _ = doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/tweets/%d/like", tweet.ID),
		map[string]uint{"actor_id": alice.ID})
	assert.Equal(t, http.StatusOK, w.Code)

	server.DB.First(&reloaded, tweet.ID)
	assert.Equal(t, int64(1), reloaded.LikeCount)

	var edges int64
	server.DB.Model(&models.Like{}).Where("user_id = ? AND tweet_id = ?", alice.ID, tweet.ID).Count(&edges)
	assert.Equal(t, int64(1), edges)
}

func TestUnlikeTweet(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")
	bob := seedUser(t, server.DB, "bob")
	tweet := seedTweet(t, server.DB, bob.ID, "like me", timeAt(1))

	doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/tweets/%d/like", tweet.ID),
		map[string]uint{"actor_id": alice.ID})

	w, _ := doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/tweets/%d/unlike", tweet.ID),
		map[string]uint{"actor_id": alice.ID})
	assert.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Tweet
	server.DB.First(&reloaded, tweet.ID)
	assert.Zero(t, reloaded.LikeCount)

	// Unliking again must not push the counter below zero
	doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/tweets/%d/unlike", tweet.ID),
		map[string]uint{"actor_id": alice.ID})
	server.DB.First(&reloaded, tweet.ID)
	assert.Zero(t, reloaded.LikeCount)
}

func TestRetweetLifecycle(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")
	bob := seedUser(t, server.DB, "bob")
	tweet := seedTweet(t, server.DB, bob.ID, "spread me", timeAt(1))

	w, _ := doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/tweets/%d/retweet", tweet.ID),
		map[string]uint{"actor_id": alice.ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	var reloaded models.Tweet
	server.DB.First(&reloaded, tweet.ID)
	assert.Equal(t, int64(1), reloaded.RetweetCount)

	// Idempotent repeat
	w, _ = doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/tweets/%d/retweet", tweet.ID),
		map[string]uint{"actor_id": alice.ID})
	assert.Equal(t, http.StatusOK, w.Code)
	server.DB.First(&reloaded, tweet.ID)
	assert.Equal(t, int64(1), reloaded.RetweetCount)

	w, _ = doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/tweets/%d/unretweet", tweet.ID),
		map[string]uint{"actor_id": alice.ID})
	assert.Equal(t, http.StatusOK, w.Code)
	server.DB.First(&reloaded, tweet.ID)
	assert.Zero(t, reloaded.RetweetCount)
}

func TestGetTweetLikes(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")
	bob := seedUser(t, server.DB, "bob")
	carol := seedUser(t, server.DB, "carol")
	tweet := seedTweet(t, server.DB, bob.ID, "popular", timeAt(1))

	for _, fan := range []models.User{alice, carol} {
		doRequest(t, r, http.MethodPost,
			fmt.Sprintf("/api/v1/tweets/%d/like", tweet.ID),
			map[string]uint{"actor_id": fan.ID})
	}

	w, responseBody := doRequest(t, r, http.MethodGet,
		fmt.Sprintf("/api/v1/tweets/%d/likes", tweet.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, responseBody["response"].([]interface{}), 2)
}

func TestLikeMissingTweet(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")

	w, _ := doRequest(t, r, http.MethodPost, "/api/v1/tweets/9999/like",
		map[string]uint{"actor_id": alice.ID})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
