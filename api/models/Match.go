package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	VoteAttend = "attend"
	VoteAbsent = "absent"

	ParticipantMember = "member"
	ParticipantGuest  = "guest"

	DefaultMaxAttendees     = 20
	DefaultVoteDeadlineTime = "23:59"
)

// Voter is embedded in a match, not an independent row. A match holds at
// most one voter per exact name; re-voting replaces the previous entry.
type Voter struct {
	Name    string    `json:"name"`
	Vote    string    `json:"vote"`
	Type    string    `json:"type"`
	Inviter string    `json:"inviter,omitempty"`
	VotedAt time.Time `json:"voted_at"`
}

// VoterList is stored as a single JSON column, mirroring the wire format.
type VoterList []Voter

func (v VoterList) Value() (driver.Value, error) {
	if v == nil {
		v = VoterList{}
	}
	return json.Marshal(v)
}

func (v *VoterList) Scan(src interface{}) error {
	switch data := src.(type) {
	case nil:
		*v = VoterList{}
		return nil
	case []byte:
		return json.Unmarshal(data, v)
	case string:
		return json.Unmarshal([]byte(data), v)
	}
	return fmt.Errorf("cannot scan voter list from %T", src)
}

type Match struct {
	ID               string    `gorm:"primary_key;size:64" json:"id"`
	Date             string    `gorm:"size:10;not null" json:"date"`
	Time             string    `gorm:"size:5;not null" json:"time"`
	Venue            string    `gorm:"size:255;not null" json:"venue"`
	VoteDeadline     string    `gorm:"size:10;not null" json:"vote_deadline"`
	VoteDeadlineTime string    `gorm:"size:5" json:"vote_deadline_time"`
	MaxAttendees     int       `gorm:"default:20" json:"max_attendees"`
	Voters           VoterList `gorm:"type:json" json:"voters"`
	CreatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// VoteTally is always derived from the voter list, never stored.
type VoteTally struct {
	Attend int `json:"attend"`
	Absent int `json:"absent"`
}

func (m *Match) BeforeCreate(tx *gorm.DB) (err error) {
	if strings.TrimSpace(m.ID) == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *Match) Prepare() {
	m.ID = strings.TrimSpace(m.ID)
	m.Date = strings.TrimSpace(m.Date)
	m.Time = strings.TrimSpace(m.Time)
	m.Venue = html.EscapeString(strings.TrimSpace(m.Venue))
	m.VoteDeadline = strings.TrimSpace(m.VoteDeadline)
	m.VoteDeadlineTime = strings.TrimSpace(m.VoteDeadlineTime)
	if m.MaxAttendees == 0 {
		m.MaxAttendees = DefaultMaxAttendees
	}
	if m.Voters == nil {
		m.Voters = VoterList{}
	}
	m.CreatedAt = time.Now()
	m.UpdatedAt = time.Now()
}

func (m *Match) Validate() map[string]string {
	var errorMessages = make(map[string]string)

	if m.Date == "" {
		errorMessages["Required_date"] = "Required Date"
	}
	if m.Time == "" {
		errorMessages["Required_time"] = "Required Time"
	}
	if m.Venue == "" {
		errorMessages["Required_venue"] = "Required Venue"
	}
	if m.VoteDeadline == "" {
		errorMessages["Required_vote_deadline"] = "Required Vote Deadline"
	} else if _, err := m.DeadlineAt(); err != nil {
		errorMessages["Invalid_vote_deadline"] = "Invalid Vote Deadline"
	}
	if m.MaxAttendees < 1 {
		errorMessages["Invalid_max_attendees"] = "Invalid Max Attendees"
	}
	return errorMessages
}

// DeadlineAt resolves the vote deadline instant. A missing deadline time
// defaults to 23:59 local on the deadline date.
func (m *Match) DeadlineAt() (time.Time, error) {
	deadlineTime := m.VoteDeadlineTime
	if deadlineTime == "" {
		deadlineTime = DefaultVoteDeadlineTime
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", m.VoteDeadline+" "+deadlineTime, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDeadline
	}
	return t, nil
}

// IsVotingOpen reports whether votes are still accepted at the given
// instant. An unparseable deadline counts as closed.
func (m *Match) IsVotingOpen(now time.Time) bool {
	deadline, err := m.DeadlineAt()
	if err != nil {
		return false
	}
	return !now.After(deadline)
}

func (m *Match) AttendeeLimit() int {
	if m.MaxAttendees < 1 {
		return DefaultMaxAttendees
	}
	return m.MaxAttendees
}

func (m *Match) Tally() VoteTally {
	var tally VoteTally
	for _, v := range m.Voters {
		switch v.Vote {
		case VoteAttend:
			tally.Attend++
		case VoteAbsent:
			tally.Absent++
		}
	}
	return tally
}

func (m *Match) IsAtCapacity() bool {
	return m.Tally().Attend >= m.AttendeeLimit()
}

// Attendees returns the voters with an attend vote, in vote order.
func (m *Match) Attendees() []Voter {
	attendees := []Voter{}
	for _, v := range m.Voters {
		if v.Vote == VoteAttend {
			attendees = append(attendees, v)
		}
	}
	return attendees
}

// CastVote applies a vote to the in-memory voter list. Last write wins per
// name: an existing entry with the same name is replaced, so re-voting at
// capacity does not count against the limit. The caller persists the result.
func (m *Match) CastVote(name, vote, participantType, inviter string, now time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if vote != VoteAttend && vote != VoteAbsent {
		return ErrInvalidVoteKind
	}
	if participantType != ParticipantMember && participantType != ParticipantGuest {
		return ErrInvalidParticipant
	}
	inviter = strings.TrimSpace(inviter)
	if participantType == ParticipantGuest && inviter == "" {
		return ErrInviterRequired
	}

	deadline, err := m.DeadlineAt()
	if err != nil {
		return err
	}
	if now.After(deadline) {
		return ErrDeadlinePassed
	}

	if vote == VoteAttend {
		attending := 0
		for _, v := range m.Voters {
			if v.Vote == VoteAttend && v.Name != name {
				attending++
			}
		}
		if attending >= m.AttendeeLimit() {
			return ErrCapacityReached
		}
	}

	kept := make(VoterList, 0, len(m.Voters)+1)
	for _, v := range m.Voters {
		if v.Name != name {
			kept = append(kept, v)
		}
	}
	voter := Voter{Name: name, Vote: vote, Type: participantType, VotedAt: now}
	if participantType == ParticipantGuest {
		voter.Inviter = inviter
	}
	m.Voters = append(kept, voter)
	return nil
}

// RemoveVote force-deletes a voter entry regardless of deadline state.
func (m *Match) RemoveVote(name string) error {
	found := false
	kept := make(VoterList, 0, len(m.Voters))
	for _, v := range m.Voters {
		if v.Name == name {
			found = true
			continue
		}
		kept = append(kept, v)
	}
	if !found {
		return ErrVoterNotFound
	}
	m.Voters = kept
	return nil
}

func (m *Match) SaveMatch(db *gorm.DB) (*Match, error) {
	if err := db.Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Match) FindAllMatches(db *gorm.DB) ([]Match, error) {
	matches := []Match{}
	err := db.Order("date asc, time asc").Find(&matches).Error
	if err != nil {
		return []Match{}, err
	}
	return matches, nil
}

func (m *Match) FindMatchByID(db *gorm.DB, id string) (*Match, error) {
	err := db.Where("id = ?", id).Take(m).Error
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Match) UpdateMatch(db *gorm.DB) (*Match, error) {
	err := db.Model(&Match{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
		"date":               m.Date,
		"time":               m.Time,
		"venue":              m.Venue,
		"vote_deadline":      m.VoteDeadline,
		"vote_deadline_time": m.VoteDeadlineTime,
		"max_attendees":      m.MaxAttendees,
		"updated_at":         time.Now(),
	}).Error
	if err != nil {
		return nil, err
	}
	return m, nil
}

// SaveVoters persists only the voter list after a ledger mutation.
func (m *Match) SaveVoters(db *gorm.DB) (*Match, error) {
	err := db.Model(&Match{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
		"voters":     m.Voters,
		"updated_at": time.Now(),
	}).Error
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Match) DeleteMatch(db *gorm.DB) (int64, error) {
	result := db.Where("id = ?", m.ID).Delete(&Match{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// FindVenues lists distinct past venues for form suggestions.
func (m *Match) FindVenues(db *gorm.DB) ([]string, error) {
	venues := []string{}
	err := db.Model(&Match{}).Distinct("venue").Order("venue asc").Pluck("venue", &venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}
