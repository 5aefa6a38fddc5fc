package models

import (
	"html"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Report struct {
	ID         uint      `gorm:"primary_key;autoIncrement" json:"id"`
	ReporterID uint      `gorm:"not null;index" json:"reporter_id"`
	ReportedID uint      `gorm:"not null;index" json:"reported_id"`
	TweetID    *uint     `gorm:"index" json:"tweet_id,omitempty"`
	Reason     string    `gorm:"size:500;not null" json:"reason"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (r *Report) Prepare() {
	r.ID = 0
	r.Reason = html.EscapeString(strings.TrimSpace(r.Reason))
	r.CreatedAt = time.Now()
}

func (r *Report) Validate() map[string]string {
	var errorMessages = make(map[string]string)

	if r.ReporterID == 0 {
		errorMessages["Required_reporter"] = "Reporter is required"
	}
	if r.ReportedID == 0 {
		errorMessages["Required_reported"] = "Reported user is required"
	}
	if r.Reason == "" {
		errorMessages["Required_reason"] = "Reason is required"
	}
	return errorMessages
}

func (r *Report) SaveReport(db *gorm.DB) (*Report, error) {
	err := db.Create(&r).Error
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ReportsAgainstUser lists reports filed against a user, newest first.
func (r *Report) ReportsAgainstUser(db *gorm.DB, uid uint) (*[]Report, error) {
	reports := []Report{}
	err := db.Where("reported_id = ?", uid).Order("created_at desc").Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return &reports, nil
}
