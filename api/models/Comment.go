package models

import (
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID         string    `gorm:"primary_key;size:64" json:"id"`
	MatchID    string    `gorm:"size:64;not null;index" json:"match_id"`
	AuthorName string    `gorm:"size:255;not null" json:"author_name"`
	Content    string    `gorm:"text;not null;" json:"content"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if strings.TrimSpace(c.ID) == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (c *Comment) Prepare() {
	c.AuthorName = html.EscapeString(strings.TrimSpace(c.AuthorName))
	c.Content = html.EscapeString(strings.TrimSpace(c.Content))
	c.CreatedAt = time.Now()
}

func (c *Comment) Validate() map[string]string {
	var errorMessages = make(map[string]string)

	if c.Content == "" {
		errorMessages["Required_content"] = "Content is required"
	}
	if c.AuthorName == "" {
		errorMessages["Required_author"] = "Author name is required"
	}
	if c.MatchID == "" {
		errorMessages["Required_match"] = "Match is required"
	}
	return errorMessages
}

func (c *Comment) SaveComment(db *gorm.DB) (*Comment, error) {
	err := db.Create(&c).Error
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Comment) GetComments(db *gorm.DB, matchID string) (*[]Comment, error) {
	comments := []Comment{}
	err := db.Where("match_id = ?", matchID).Order("created_at asc").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return &comments, nil
}

func (c *Comment) DeleteAComment(db *gorm.DB) (int64, error) {
	result := db.Where("id = ?", c.ID).Delete(&Comment{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// When a match is deleted, we also delete the comments that the match had
func (c *Comment) DeleteMatchComments(db *gorm.DB, matchID string) (int64, error) {
	result := db.Where("match_id = ?", matchID).Delete(&Comment{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
