package teams

import (
	"fmt"
	"strings"
	"time"

	"github.com/jaekwan-dev/soccer-schedule-manager/api/models"
)

var teamNames = []string{"블루팀", "오렌지팀", "화이트팀"}

// TeamName returns the fixed label for the first three teams and an
// ordinal label beyond that.
func TeamName(index int) string {
	if index < len(teamNames) {
		return teamNames[index]
	}
	return fmt.Sprintf("팀%d", index+1)
}

var koreanWeekdays = []string{"일", "월", "화", "수", "목", "금", "토"}

func formatKoreanDate(date string) string {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d년 %d월 %d일 (%s)", t.Year(), int(t.Month()), t.Day(), koreanWeekdays[int(t.Weekday())])
}

// Render produces the shareable text report for a generated team split.
func Render(match *models.Match, generated []Team) string {
	total := 0
	for _, team := range generated {
		total += len(team.Players)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏆 자동 팀편성 결과 (%d팀)\n", len(generated))
	fmt.Fprintf(&b, "📅 경기일: %s %s\n", formatKoreanDate(match.Date), match.Time)
	fmt.Fprintf(&b, "📍 장소: %s\n", match.Venue)
	fmt.Fprintf(&b, "👥 총 참석자: %d명\n\n", total)

	for _, team := range generated {
		fmt.Fprintf(&b, "⚽ %s (%d명)\n", team.Name, len(team.Players))
		for _, p := range team.Players {
			guestInfo := ""
			if p.Type == models.ParticipantGuest && p.Inviter != "" {
				guestInfo = fmt.Sprintf(" (%s 지인)", p.Inviter)
			}
			fmt.Fprintf(&b, "%s (%s)%s\n", p.Name, models.LevelName(p.Level), guestInfo)
		}
		b.WriteString("\n")
	}
	return b.String()
}
