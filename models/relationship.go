package models

import "gorm.io/gorm"

// Relationship queries are point-in-time reads over the edge tables; no
// graph is kept in memory and nothing here is cached. Each feed request
// recomputes them, trading repetition for read-committed freshness.

// BlockedUserIDs returns the union of users the viewer has blocked and
// users who have blocked the viewer. The edge is directed but visibility
// treats it as symmetric; there is no transitive closure. A viewer id that
// matches no user simply yields an empty set.
func BlockedUserIDs(db *gorm.DB, viewerID uint) ([]uint, error) {
	var blocked []uint
	if err := db.Model(&Block{}).Where("blocker_id = ?", viewerID).Pluck("blocked_id", &blocked).Error; err != nil {
		return nil, err
	}

	var blockers []uint
	if err := db.Model(&Block{}).Where("blocked_id = ?", viewerID).Pluck("blocker_id", &blockers).Error; err != nil {
		return nil, err
	}

	seen := make(map[uint]bool, len(blocked)+len(blockers))
	ids := make([]uint, 0, len(blocked)+len(blockers))
	for _, id := range blocked {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, id := range blockers {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// FollowingUserIDs returns the set of users the viewer follows.
func FollowingUserIDs(db *gorm.DB, viewerID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&Follow{}).Where("follower_id = ?", viewerID).Pluck("followed_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func IsFollowing(db *gorm.DB, followerID, followedID uint) (bool, error) {
	var count int64
	err := db.Model(&Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// BlockExistsBetween reports whether either user has blocked the other.
func BlockExistsBetween(db *gorm.DB, a, b uint) (bool, error) {
	var count int64
	err := db.Model(&Block{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)", a, b, b, a).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
