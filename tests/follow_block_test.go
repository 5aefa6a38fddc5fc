package tests

import (
	"fmt"
	"net/http"
	"testing"

	"Chirp/models"

	"github.com/stretchr/testify/assert"
)

func TestFollowUser(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")
	bob := seedUser(t, server.DB, "bob")

	w, _ := doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/users/%d/follow/%d", alice.ID, bob.ID), nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	var aliceReloaded, bobReloaded models.User
	server.DB.First(&aliceReloaded, alice.ID)
	server.DB.First(&bobReloaded, bob.ID)
	assert.Equal(t, int64(1), aliceReloaded.FollowingCount)
	assert.Equal(t, int64(1), bobReloaded.FollowersCount)

	// A repeat follow is a no-op and must not move the counters
	w, _ = doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/users/%d/follow/%d", alice.ID, bob.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	server.DB.First(&aliceReloaded, alice.ID)
	server.DB.First(&bobReloaded, bob.ID)
	assert.Equal(t, int64(1), aliceReloaded.FollowingCount)
	assert.Equal(t, int64(1), bobReloaded.FollowersCount)
}

func TestFollowSelfRejected(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")

	w, _ := doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/users/%d/follow/%d", alice.ID, alice.ID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFollowUnknownUser(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")

	w, _ := doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/users/%d/follow/%d", alice.ID, uint(9999)), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnfollowUser(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")
	bob := seedUser(t, server.DB, "bob")

	doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/users/%d/follow/%d", alice.ID, bob.ID), nil)

	w, _ := doRequest(t, r, http.MethodDelete,
		fmt.Sprintf("/api/v1/users/%d/follow/%d", alice.ID, bob.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var aliceReloaded, bobReloaded models.User
	server.DB.First(&aliceReloaded, alice.ID)
	server.DB.First(&bobReloaded, bob.ID)
	assert.Zero(t, aliceReloaded.FollowingCount)
	assert.Zero(t, bobReloaded.FollowersCount)

	// Unfollowing again must not drive the counters negative
	w, _ = doRequest(t, r, http.MethodDelete,
		fmt.Sprintf("/api/v1/users/%d/follow/%d", alice.ID, bob.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	server.DB.First(&aliceReloaded, alice.ID)
	server.DB.First(&bobReloaded, bob.ID)
	assert.Zero(t, aliceReloaded.FollowingCount)
	assert.Zero(t, bobReloaded.FollowersCount)
}

func TestFollowersAndFollowingListings(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")
	bob := seedUser(t, server.DB, "bob")
	carol := seedUser(t, server.DB, "carol")

	doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/users/%d/follow/%d", alice.ID, bob.ID), nil)
	doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/users/%d/follow/%d", carol.ID, bob.ID), nil)

	w, responseBody := doRequest(t, r, http.MethodGet,
		fmt.Sprintf("/api/v1/users/%d/followers", bob.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, responseBody["response"].([]interface{}), 2)

	w, responseBody = doRequest(t, r, http.MethodGet,
		fmt.Sprintf("/api/v1/users/%d/following", alice.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	following := responseBody["response"].([]interface{})
	assert.Len(t, following, 1)
	assert.Equal(t, "bob", following[0].(map[string]interface{})["username"])

	w, responseBody = doRequest(t, r, http.MethodGet,
		fmt.Sprintf("/api/v1/users/%d/is-following/%d", alice.ID, bob.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	status := responseBody["response"].(map[string]interface{})
	assert.True(t, status["is_following"].(bool))
}

func TestBlockRemovesFollowsBothDirections(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")
	bob := seedUser(t, server.DB, "bob")

	// Mutual follows before the block
	doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/users/%d/follow/%d", alice.ID, bob.ID), nil)
	doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/users/%d/follow/%d", bob.ID, alice.ID), nil)

	w, _ := doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/users/%d/block/%d", alice.ID, bob.ID), nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	var count int64
	server.DB.Model(&models.Follow{}).
		Where("(follower_id = ? AND followed_id = ?) OR (follower_id = ? AND followed_id = ?)",
			alice.ID, bob.ID, bob.ID, alice.ID).
		Count(&count)
	assert.Zero(t, count, "Block should sever follows in both directions")

	var aliceReloaded, bobReloaded models.User
	server.DB.First(&aliceReloaded, alice.ID)
	server.DB.First(&bobReloaded, bob.ID)
	assert.Zero(t, aliceReloaded.FollowersCount)
	assert.Zero(t, aliceReloaded.FollowingCount)
	assert.Zero(t, bobReloaded.FollowersCount)
	assert.Zero(t, bobReloaded.FollowingCount)

	// Blocking again stays idempotent
	w, _ = doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/users/%d/block/%d", alice.ID, bob.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnblockUser(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")
	bob := seedUser(t, server.DB, "bob")

	doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/users/%d/block/%d", alice.ID, bob.ID), nil)

	w, _ := doRequest(t, r, http.MethodDelete,
		fmt.Sprintf("/api/v1/users/%d/block/%d", alice.ID, bob.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	server.DB.Model(&models.Block{}).Where("blocker_id = ?", alice.ID).Count(&count)
	assert.Zero(t, count)
}

func TestMuteIsMetadataOnly(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")
	bob := seedUser(t, server.DB, "bob")
	seedFollow(t, server.DB, alice.ID, bob.ID)
	tweet := seedTweet(t, server.DB, bob.ID, "still visible", timeAt(1))

	w, _ := doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/users/%d/mute/%d", alice.ID, bob.ID), nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	// The mute is recorded
	w, responseBody := doRequest(t, r, http.MethodGet,
		fmt.Sprintf("/api/v1/users/%d/mutes", alice.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, responseBody["response"].([]interface{}), 1)

	// But it does not change what the feed shows
	w, responseBody = doRequest(t, r, http.MethodGet,
		fmt.Sprintf("/api/v1/tweets/following/%d", alice.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, feedIDs(t, responseBody), tweet.ID)
}

func TestCreateReport(t *testing.T) {
	r, server := newTestServer(t)

	alice := seedUser(t, server.DB, "alice")
	bob := seedUser(t, server.DB, "bob")

	w, _ := doRequest(t, r, http.MethodPost, "/api/v1/reports", map[string]interface{}{
		"reporter_id": alice.ID,
		"reported_id": bob.ID,
		"reason":      "spam",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w, responseBody := doRequest(t, r, http.MethodGet,
		fmt.Sprintf("/api/v1/users/%d/reports", bob.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, responseBody["response"].([]interface{}), 1)
}

func TestCreateReportUnknownReporter(t *testing.T) {
	r, server := newTestServer(t)

	bob := seedUser(t, server.DB, "bob")

	w, _ := doRequest(t, r, http.MethodPost, "/api/v1/reports", map[string]interface{}{
		"reporter_id": 9999,
		"reported_id": bob.ID,
		"reason":      "spam",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	server.DB.Model(&models.Report{}).Count(&count)
	assert.Zero(t, count)
}
