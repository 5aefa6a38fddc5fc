package controllers

import (
	"log"

	"Chirp/models"
)

// notify records a best-effort notification once the primary mutation has
// committed. A failed write here is logged and swallowed; it never fails
// the action that triggered it.
func (server *Server) notify(typ string, recipientID, actorID uint, tweetID, commentID *uint) {
	notification := models.Notification{
		Type:      typ,
		UserID:    recipientID,
		ActorID:   actorID,
		TweetID:   tweetID,
		CommentID: commentID,
	}
	saved, err := notification.SaveNotification(server.DB)
	if err != nil {
		log.Printf("notification fan-out failed (%s %d -> %d): %v", typ, actorID, recipientID, err)
		return
	}
	if saved != nil {
		invalidateUnreadCountCache(recipientID)
	}
}
