package main

import (
	api "Chirp"
)

// @title Chirp API
// @version 1.0
// @description Social API for tweets, feeds, engagement, chats, and notifications
// @BasePath /api/v1
// @schemes http https
func main() {
	api.Run()
}
