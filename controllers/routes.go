package controllers

func (s *Server) initializeRoutes() {

	v1 := s.Router.Group("/api/v1")
	{
		// Users routes
		v1.POST("/users", s.CreateUser)
		v1.GET("/users", s.GetUsers)
		v1.GET("/users/:id", s.GetUser)
		v1.GET("/users/username/:username", s.GetUserByUsername)
		v1.PATCH("/users/:id", s.UpdateUser)
		v1.DELETE("/users/:id", s.DeleteUser)

		// Follow routes
		v1.POST("/users/:id/follow/:target_id", s.FollowUser)
		v1.DELETE("/users/:id/follow/:target_id", s.UnfollowUser)
		v1.GET("/users/:id/followers", s.GetFollowers)
		v1.GET("/users/:id/following", s.GetFollowing)
		v1.GET("/users/:id/is-following/:target_id", s.IsFollowingUser)

		// Block / mute / report routes
		v1.POST("/users/:id/block/:target_id", s.BlockUser)
		v1.DELETE("/users/:id/block/:target_id", s.UnblockUser)
		v1.GET("/users/:id/blocks", s.GetBlockedUsers)
		v1.POST("/users/:id/mute/:target_id", s.MuteUser)
		v1.DELETE("/users/:id/mute/:target_id", s.UnmuteUser)
		v1.GET("/users/:id/mutes", s.GetMutedUsers)
		v1.POST("/reports", s.CreateReport)
		v1.GET("/users/:id/reports", s.GetUserReports)

		// Tweet routes
		v1.POST("/tweets", s.CreateTweet)
		v1.GET("/tweets", s.GetTweets)
		v1.GET("/tweets/search", s.SearchTweets)
		v1.GET("/tweets/:id", s.GetTweet)
		v1.GET("/tweets/user/:id", s.GetUserTweets)
		v1.DELETE("/tweets/:id", s.DeleteTweet)
		v1.POST("/tweets/:id/view", s.ViewTweet)

		// Feed routes
		v1.GET("/tweets/following/:id", s.GetFollowingFeed)
		v1.GET("/tweets/for-you/:id", s.GetForYouFeed)

		// Like / retweet routes
		v1.POST("/tweets/:id/like", s.LikeTweet)
		v1.POST("/tweets/:id/unlike", s.UnlikeTweet)
		v1.GET("/tweets/:id/likes", s.GetTweetLikes)
		v1.POST("/tweets/:id/retweet", s.RetweetTweet)
		v1.POST("/tweets/:id/unretweet", s.UnretweetTweet)

		// Comment routes
		v1.POST("/comments", s.CreateComment)
		v1.GET("/comments/tweet/:id", s.GetTweetComments)
		v1.GET("/comments/user/:id", s.GetUserComments)
		v1.PATCH("/comments/:id", s.UpdateComment)
		v1.DELETE("/comments/:id", s.DeleteComment)
		v1.POST("/comments/:id/like", s.LikeComment)
		v1.POST("/comments/:id/unlike", s.UnlikeComment)

		// Bookmark routes
		v1.POST("/bookmarks", s.CreateBookmark)
		v1.DELETE("/bookmarks/:user_id/:tweet_id", s.DeleteBookmark)
		v1.GET("/bookmarks/user/:user_id", s.GetUserBookmarks)
		v1.GET("/bookmarks/:user_id/:tweet_id/status", s.GetBookmarkStatus)

		// Chat routes
		v1.POST("/chats", s.CreateChat)
		v1.POST("/chats/direct", s.GetOrCreateDirectChat)
		v1.GET("/chats/:id", s.GetChat)
		v1.GET("/chats/user/:id", s.GetUserChats)
		v1.PATCH("/chats/:id", s.UpdateChatName)
		v1.DELETE("/chats/:id", s.DeleteChat)
		v1.POST("/chats/:id/messages", s.SendMessage)
		v1.GET("/chats/:id/messages", s.GetChatMessages)
		v1.POST("/chats/:id/members", s.AddChatMember)
		v1.DELETE("/chats/:id/members/:user_id", s.RemoveChatMember)

		// Notification routes
		v1.GET("/notifications/user/:id", s.GetUserNotifications)
		v1.GET("/notifications/user/:id/unread-count", s.GetUnreadNotificationCount)
		v1.POST("/notifications/:id/read", s.MarkNotificationRead)
		v1.POST("/notifications/user/:id/read-all", s.MarkAllNotificationsRead)
		v1.DELETE("/notifications/:id", s.DeleteNotification)
	}
}
