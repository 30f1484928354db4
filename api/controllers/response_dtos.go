package controllers

import (
	"time"

	"github.com/jaekwan-dev/soccer-schedule-manager/api/models"
)

// MatchResponse is the wire shape of a match. The attendance tally is a
// projection of the voter list, computed at response time.
type MatchResponse struct {
	ID               string           `json:"id"`
	Date             string           `json:"date"`
	Time             string           `json:"time"`
	Venue            string           `json:"venue"`
	VoteDeadline     string           `json:"vote_deadline"`
	VoteDeadlineTime string           `json:"vote_deadline_time"`
	MaxAttendees     int              `json:"max_attendees"`
	AttendanceVotes  models.VoteTally `json:"attendance_votes"`
	Voters           []models.Voter   `json:"voters"`
	VotingOpen       bool             `json:"voting_open"`
	AtCapacity       bool             `json:"at_capacity"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type PartitionedMatchesResponse struct {
	Ongoing []MatchResponse `json:"ongoing"`
	Closed  []MatchResponse `json:"closed"`
}

type PlayerResponse struct {
	Name      string `json:"name"`
	Level     int    `json:"level"`
	LevelName string `json:"level_name"`
	Type      string `json:"type"`
	Inviter   string `json:"inviter,omitempty"`
	Weight    int    `json:"weight"`
}

type TeamResponse struct {
	Name    string           `json:"name"`
	Weight  int              `json:"weight"`
	Players []PlayerResponse `json:"players"`
}

// TeamReportResponse carries the structured split plus the shareable text.
type TeamReportResponse struct {
	TeamCount int            `json:"team_count"`
	Strategy  string         `json:"strategy"`
	Teams     []TeamResponse `json:"teams"`
	Report    string         `json:"report"`
}

type VoteRequest struct {
	Name    string `json:"name"`
	Vote    string `json:"vote"`
	Type    string `json:"type"`
	Inviter string `json:"inviter"`
}

type RemoveVoteRequest struct {
	VoterName string `json:"voter_name"`
}

type GenerateTeamsRequest struct {
	TeamCount int    `json:"team_count"`
	Strategy  string `json:"strategy"`
}

type LoginRequest struct {
	Password string `json:"password"`
}
