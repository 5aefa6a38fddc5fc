package models

import (
	"errors"

	"gorm.io/gorm"
)

// Feed pagination defaults; take is capped so a single page stays bounded.
const (
	FeedDefaultSkip = 0
	FeedDefaultTake = 10
	FeedMaxTake     = 100
)

// How many of a tweet's newest comments ride along with each feed entry.
const recentCommentTake = 2

// FollowingFeed composes the page of tweets authored by the viewer's
// following set plus the viewer, minus anyone blocked in either direction.
// Ordering is newest first with id as tie-break so pagination is stable.
// A viewer id that matches no user degrades to the unfiltered listing.
func FollowingFeed(db *gorm.DB, viewerID uint, skip, take int) ([]Tweet, error) {
	exists, err := viewerExists(db, viewerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		tweet := Tweet{}
		return tweet.FindAllTweets(db, skip, take)
	}

	following, err := FollowingUserIDs(db, viewerID)
	if err != nil {
		return nil, err
	}
	blocked, err := BlockedUserIDs(db, viewerID)
	if err != nil {
		return nil, err
	}

	authors := excludeIDs(append(following, viewerID), blocked)
	if len(authors) == 0 {
		return []Tweet{}, nil
	}

	tweets := []Tweet{}
	err = db.Preload("Author").Preload("Media").
		Where("author_id IN ?", authors).
		Order("created_at desc, id desc").
		Offset(skip).Limit(take).
		Find(&tweets).Error
	if err != nil {
		return nil, err
	}
	if err := attachRecentCommentsToSlice(db, tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

// ForYouFeed composes the complement page: tweets from everyone the viewer
// does not already follow, plus the viewer's own, minus blocked users. Own
// posts appear in both feeds.
func ForYouFeed(db *gorm.DB, viewerID uint, skip, take int) ([]Tweet, error) {
	exists, err := viewerExists(db, viewerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		tweet := Tweet{}
		return tweet.FindAllTweets(db, skip, take)
	}

	following, err := FollowingUserIDs(db, viewerID)
	if err != nil {
		return nil, err
	}
	blocked, err := BlockedUserIDs(db, viewerID)
	if err != nil {
		return nil, err
	}

	query := db.Preload("Author").Preload("Media").Model(&Tweet{})
	if len(following) > 0 {
		query = query.Where("author_id = ? OR author_id NOT IN ?", viewerID, following)
	}
	if len(blocked) > 0 {
		query = query.Where("author_id NOT IN ?", blocked)
	}

	tweets := []Tweet{}
	err = query.Order("created_at desc, id desc").
		Offset(skip).Limit(take).
		Find(&tweets).Error
	if err != nil {
		return nil, err
	}
	if err := attachRecentCommentsToSlice(db, tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

func viewerExists(db *gorm.DB, viewerID uint) (bool, error) {
	err := db.Select("id").First(&User{}, viewerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func excludeIDs(ids, exclude []uint) []uint {
	if len(exclude) == 0 {
		return ids
	}
	drop := make(map[uint]bool, len(exclude))
	for _, id := range exclude {
		drop[id] = true
	}
	kept := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !drop[id] {
			kept = append(kept, id)
		}
	}
	return kept
}

// attachRecentComments loads the newest comments (with authors) for a set
// of tweets in one query and distributes them, keeping at most limit per
// tweet. A limit of zero keeps them all.
func attachRecentComments(db *gorm.DB, tweets []*Tweet, limit int) error {
	if len(tweets) == 0 {
		return nil
	}
	ids := make([]uint, len(tweets))
	for i, t := range tweets {
		ids[i] = t.ID
	}

	comments := []Comment{}
	err := db.Preload("Author").
		Where("tweet_id IN ?", ids).
		Order("created_at desc, id desc").
		Find(&comments).Error
	if err != nil {
		return err
	}

	byTweet := make(map[uint][]Comment, len(tweets))
	for _, c := range comments {
		if limit > 0 && len(byTweet[c.TweetID]) >= limit {
			continue
		}
		byTweet[c.TweetID] = append(byTweet[c.TweetID], c)
	}
	for _, t := range tweets {
		t.Comments = byTweet[t.ID]
		if t.Comments == nil {
			t.Comments = []Comment{}
		}
	}
	return nil
}

func attachRecentCommentsToSlice(db *gorm.DB, tweets []Tweet) error {
	ptrs := make([]*Tweet, len(tweets))
	for i := range tweets {
		ptrs[i] = &tweets[i]
	}
	return attachRecentComments(db, ptrs, recentCommentTake)
}
