package models

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinLevel = 1
	MaxLevel = 13

	// DefaultLevel is applied when an attendee has no roster entry.
	DefaultLevel = 1
)

type Member struct {
	ID        string    `gorm:"primary_key;size:64" json:"id"`
	Name      string    `gorm:"size:255;not null;unique" json:"name"`
	Level     int       `gorm:"not null;default:1" json:"level"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (m *Member) BeforeCreate(tx *gorm.DB) (err error) {
	if strings.TrimSpace(m.ID) == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *Member) Prepare() {
	m.ID = strings.TrimSpace(m.ID)
	m.Name = html.EscapeString(strings.TrimSpace(m.Name))
	m.CreatedAt = time.Now()
	m.UpdatedAt = time.Now()
}

func (m *Member) Validate() map[string]string {
	var errorMessages = make(map[string]string)

	if m.Name == "" {
		errorMessages["Required_name"] = "Required Name"
	}
	if m.Level < MinLevel || m.Level > MaxLevel {
		errorMessages["Invalid_level"] = "Level must be between 1 and 13"
	}
	return errorMessages
}

// LevelName returns the display name for a skill level, 13 sub-ranks over
// five categories (루키, 비기너, 아마추어, 세미프로, 프로).
func LevelName(level int) string {
	switch level {
	case 1:
		return "루키 1"
	case 2:
		return "비기너 1"
	case 3:
		return "비기너 2"
	case 4:
		return "비기너 3"
	case 5:
		return "아마추어 1"
	case 6:
		return "아마추어 2"
	case 7:
		return "아마추어 3"
	case 8:
		return "아마추어 4"
	case 9:
		return "아마추어 5"
	case 10:
		return "세미프로 1"
	case 11:
		return "세미프로 2"
	case 12:
		return "세미프로 3"
	case 13:
		return "프로 1"
	default:
		return fmt.Sprintf("레벨 %d", level)
	}
}

// CategoryName returns the coarse category a level belongs to.
func CategoryName(level int) string {
	switch {
	case level == 1:
		return "루키"
	case level >= 2 && level <= 4:
		return "비기너"
	case level >= 5 && level <= 9:
		return "아마추어"
	case level >= 10 && level <= 12:
		return "세미프로"
	case level == 13:
		return "프로"
	default:
		return "기타"
	}
}

// MemberLevels builds the exact-name level lookup used by the team balancer.
func MemberLevels(members []Member) map[string]int {
	levels := make(map[string]int, len(members))
	for _, m := range members {
		levels[m.Name] = m.Level
	}
	return levels
}

func (m *Member) SaveMember(db *gorm.DB) (*Member, error) {
	if err := db.Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Member) FindAllMembers(db *gorm.DB) ([]Member, error) {
	members := []Member{}
	err := db.Order("name asc").Find(&members).Error
	if err != nil {
		return []Member{}, err
	}
	return members, nil
}

func (m *Member) FindMemberByID(db *gorm.DB, id string) (*Member, error) {
	err := db.Where("id = ?", id).Take(m).Error
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Member) UpdateMember(db *gorm.DB) (*Member, error) {
	err := db.Model(&Member{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
		"name":       m.Name,
		"level":      m.Level,
		"updated_at": time.Now(),
	}).Error
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Member) DeleteMember(db *gorm.DB) (int64, error) {
	result := db.Where("id = ?", m.ID).Delete(&Member{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
