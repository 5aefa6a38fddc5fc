package seed

import (
	"log"

	"Chirp/models"

	"gorm.io/gorm"
)

var users = []models.User{
	{
		Username: "amina",
		Email:    "amina@example.com",
		Name:     "Amina Diop",
		Bio:      "Coffee first, code second.",
	},
	{
		Username: "jorge",
		Email:    "jorge@example.com",
		Name:     "Jorge Alvarez",
		Bio:      "Photographer. Occasional poster.",
	},
	{
		Username: "mei",
		Email:    "mei@example.com",
		Name:     "Mei Tanaka",
	},
}

var tweetContents = []string{
	"Shipping a new side project this weekend. Watch this space.",
	"Golden hour over the bay tonight was unreal.",
	"Hot take: breakfast food is acceptable at every hour.",
	"Anyone else refactor for fun or is that just me?",
	"First coffee of the day hits different.",
	"New lens arrived. Expect an unreasonable number of photos.",
}

// Load wipes and repopulates the database with demo users, a small follow
// graph, tweets, and some engagement so feeds have something to show.
func Load(db *gorm.DB) {
	tables := []interface{}{
		&models.Notification{}, &models.MessageMedia{}, &models.Message{},
		&models.ChatMember{}, &models.Chat{}, &models.Bookmark{},
		&models.Retweet{}, &models.Like{}, &models.Comment{},
		&models.TweetMedia{}, &models.Tweet{}, &models.Report{},
		&models.Mute{}, &models.Block{}, &models.Follow{}, &models.User{},
	}
	for _, table := range tables {
		if err := db.Migrator().DropTable(table); err != nil {
			log.Fatalf("cannot drop table: %v", err)
		}
	}

	if err := db.AutoMigrate(
		&models.User{}, &models.Follow{}, &models.Block{}, &models.Mute{},
		&models.Report{}, &models.Tweet{}, &models.TweetMedia{},
		&models.Comment{}, &models.Like{}, &models.Retweet{},
		&models.Bookmark{}, &models.Chat{}, &models.ChatMember{},
		&models.Message{}, &models.MessageMedia{}, &models.Notification{},
	); err != nil {
		log.Fatalf("cannot migrate tables: %v", err)
	}

	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			log.Fatalf("cannot seed users table: %v", err)
		}
	}

	// amina follows jorge and mei; jorge follows amina back
	followPairs := [][2]int{{0, 1}, {0, 2}, {1, 0}}
	for _, pair := range followPairs {
		follow := models.Follow{
			FollowerID: users[pair[0]].ID,
			FollowedID: users[pair[1]].ID,
		}
		if err := db.Create(&follow).Error; err != nil {
			log.Fatalf("cannot seed follows table: %v", err)
		}
		db.Model(&models.User{}).Where("id = ?", follow.FollowerID).
			UpdateColumn("following_count", gorm.Expr("following_count + 1"))
		db.Model(&models.User{}).Where("id = ?", follow.FollowedID).
			UpdateColumn("followers_count", gorm.Expr("followers_count + 1"))
	}

	tweets := make([]models.Tweet, 0, len(tweetContents))
	for i, content := range tweetContents {
		tweet := models.Tweet{
			Content:         content,
			AuthorID:        users[i%len(users)].ID,
			CommentsEnabled: true,
		}
		saved, err := tweet.SaveTweet(db, nil)
		if err != nil {
			log.Fatalf("cannot seed tweets table: %v", err)
		}
		tweets = append(tweets, *saved)
	}

	// a little engagement so counters and feeds are non-trivial
	like := models.Like{UserID: users[1].ID, TweetID: tweets[0].ID}
	if _, err := like.SaveLike(db); err != nil {
		log.Fatalf("cannot seed likes table: %v", err)
	}
	retweet := models.Retweet{UserID: users[2].ID, TweetID: tweets[0].ID}
	if _, err := retweet.SaveRetweet(db); err != nil {
		log.Fatalf("cannot seed retweets table: %v", err)
	}
	comment := models.Comment{
		AuthorID: users[2].ID,
		TweetID:  tweets[1].ID,
		Content:  "Stunning shot.",
	}
	if _, err := comment.SaveComment(db); err != nil {
		log.Fatalf("cannot seed comments table: %v", err)
	}

	log.Printf("seeded %d users and %d tweets", len(users), len(tweets))
}
