package controllers

import (
	"github.com/jaekwan-dev/soccer-schedule-manager/api/models"
	"github.com/jaekwan-dev/soccer-schedule-manager/api/teams"
)

func (server *Server) toMatchResponse(m *models.Match) MatchResponse {
	voters := m.Voters
	if voters == nil {
		voters = models.VoterList{}
	}
	return MatchResponse{
		ID:               m.ID,
		Date:             m.Date,
		Time:             m.Time,
		Venue:            m.Venue,
		VoteDeadline:     m.VoteDeadline,
		VoteDeadlineTime: m.VoteDeadlineTime,
		MaxAttendees:     m.AttendeeLimit(),
		AttendanceVotes:  m.Tally(),
		Voters:           voters,
		VotingOpen:       m.IsVotingOpen(server.now()),
		AtCapacity:       m.IsAtCapacity(),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func (server *Server) toMatchResponses(matches []models.Match) []MatchResponse {
	responses := make([]MatchResponse, 0, len(matches))
	for i := range matches {
		responses = append(responses, server.toMatchResponse(&matches[i]))
	}
	return responses
}

func toTeamResponses(generated []teams.Team) []TeamResponse {
	responses := make([]TeamResponse, 0, len(generated))
	for _, team := range generated {
		players := make([]PlayerResponse, 0, len(team.Players))
		for _, p := range team.Players {
			players = append(players, PlayerResponse{
				Name:      p.Name,
				Level:     p.Level,
				LevelName: models.LevelName(p.Level),
				Type:      p.Type,
				Inviter:   p.Inviter,
				Weight:    p.Weight,
			})
		}
		responses = append(responses, TeamResponse{
			Name:    team.Name,
			Weight:  team.Weight,
			Players: players,
		})
	}
	return responses
}
