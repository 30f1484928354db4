// Package teams partitions a match's confirmed attendees into teams of
// roughly equal total skill weight using a greedy longest-first heuristic.
package teams

import (
	"errors"
	"sort"

	"github.com/jaekwan-dev/soccer-schedule-manager/api/models"
)

var (
	ErrNoAttendees      = errors.New("no attendees to assign")
	ErrInvalidTeamCount = errors.New("invalid team count")
)

// Strategy selects how a skill level maps to a balancing weight.
type Strategy string

const (
	// StrategyLevel uses the level itself as the weight. Default.
	StrategyLevel Strategy = "level"
	// StrategyBanded compresses low levels and stretches high ones.
	StrategyBanded Strategy = "banded"
)

// Banded weight table: levels 1-4 stay nearly flat, 5-13 spread out.
var bandedWeights = map[int]int{
	1:  1,
	2:  2,
	3:  2,
	4:  2,
	5:  2,
	6:  3,
	7:  4,
	8:  5,
	9:  6,
	10: 7,
	11: 8,
	12: 9,
	13: 10,
}

type Player struct {
	Name    string
	Level   int
	Type    string
	Inviter string
	Weight  int
}

type Team struct {
	Name    string
	Players []Player
	Weight  int
}

func weightFor(level int, strategy Strategy) int {
	if strategy == StrategyBanded {
		if w, ok := bandedWeights[level]; ok {
			return w
		}
		return 0
	}
	return level
}

// Generate splits the match's attendees into teamCount teams. Levels are
// resolved by exact-name roster lookup; an attendee without a roster entry
// plays at the default level. The result is deterministic: attendees are
// ordered by weight descending with names breaking ties, and each is placed
// on the lightest team, lowest index first.
func Generate(match *models.Match, roster []models.Member, teamCount int, strategy Strategy) ([]Team, error) {
	if teamCount < 2 {
		return nil, ErrInvalidTeamCount
	}

	attendees := match.Attendees()
	if len(attendees) == 0 {
		return nil, ErrNoAttendees
	}
	if teamCount > len(attendees) {
		return nil, ErrInvalidTeamCount
	}

	levels := models.MemberLevels(roster)
	players := make([]Player, 0, len(attendees))
	for _, v := range attendees {
		level, ok := levels[v.Name]
		if !ok {
			level = models.DefaultLevel
		}
		players = append(players, Player{
			Name:    v.Name,
			Level:   level,
			Type:    v.Type,
			Inviter: v.Inviter,
			Weight:  weightFor(level, strategy),
		})
	}

	sort.Slice(players, func(i, j int) bool {
		if players[i].Weight != players[j].Weight {
			return players[i].Weight > players[j].Weight
		}
		return players[i].Name < players[j].Name
	})

	teams := make([]Team, teamCount)
	for i := range teams {
		teams[i].Name = TeamName(i)
		teams[i].Players = []Player{}
	}
	for _, p := range players {
		lightest := 0
		for i := 1; i < teamCount; i++ {
			if teams[i].Weight < teams[lightest].Weight {
				lightest = i
			}
		}
		teams[lightest].Players = append(teams[lightest].Players, p)
		teams[lightest].Weight += p.Weight
	}
	return teams, nil
}
