package seed

import (
	"log"
	"time"

	"github.com/jaekwan-dev/soccer-schedule-manager/api/models"

	"gorm.io/gorm"
)

var members = []models.Member{
	{Name: "김재관", Level: 10},
	{Name: "박민수", Level: 7},
	{Name: "이정우", Level: 5},
	{Name: "최현석", Level: 13},
	{Name: "정태훈", Level: 2},
	{Name: "한지훈", Level: 8},
}

// Load wipes and reseeds the dev database with a roster and one upcoming
// match so the vote and team flows can be exercised immediately.
func Load(db *gorm.DB) {
	err := db.Migrator().DropTable(&models.Match{}, &models.Member{}, &models.Comment{})
	if err != nil {
		log.Fatalf("cannot drop tables: %v", err)
	}
	if err := db.AutoMigrate(&models.Match{}, &models.Member{}, &models.Comment{}); err != nil {
		log.Fatalf("cannot migrate tables: %v", err)
	}

	for i := range members {
		members[i].Prepare()
		if _, err := members[i].SaveMember(db); err != nil {
			log.Fatalf("cannot seed members table: %v", err)
		}
	}

	nextSaturday := upcomingSaturday(time.Now())
	match := models.Match{
		Date:         nextSaturday.Format("2006-01-02"),
		Time:         "07:00",
		Venue:        "반포종합운동장",
		VoteDeadline: nextSaturday.AddDate(0, 0, -1).Format("2006-01-02"),
		MaxAttendees: 20,
	}
	match.Prepare()
	if _, err := match.SaveMatch(db); err != nil {
		log.Fatalf("cannot seed matches table: %v", err)
	}
}

func upcomingSaturday(from time.Time) time.Time {
	days := (int(time.Saturday) - int(from.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return from.AddDate(0, 0, days)
}
