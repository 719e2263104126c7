// Package consistency derives the streak and weekly-completion view
// from a user's routine history. It holds no state of its own and is
// deterministic given a clock.
package consistency

import (
	"fmt"
	"math"
	"time"

	"github.com/bluesmoth12/Blossom/internal/constants"
	"github.com/bluesmoth12/Blossom/internal/dates"
	"github.com/bluesmoth12/Blossom/internal/models"
)

// History is the read capability the engine needs from storage.
type History interface {
	// GetRoutineHistory returns the user's routines with day >= sinceDay,
	// newest first.
	GetRoutineHistory(userID int64, sinceDay string) ([]models.Routine, error)
}

// Engine computes Consistency views.
type Engine struct {
	history History
	loc     *time.Location
	now     func() time.Time
}

// New creates an Engine reading from history, with days normalized to loc.
func New(history History, loc *time.Location) *Engine {
	return &Engine{history: history, loc: loc, now: time.Now}
}

// View derives the current consistency view for a user.
//
// The streak walk starts at today and moves backward one day at a time:
// a logged day extends the streak, a missing day ends it, except that a
// missing today is skipped without ending the streak because the user
// may simply not have logged yet. The walk is bounded to the same
// 30-day window the history fetch uses.
func (e *Engine) View(userID int64) (models.Consistency, error) {
	now := e.now().In(e.loc)
	since := dates.Day(now.AddDate(0, 0, -constants.ConsistencyLookbackDays), e.loc)

	history, err := e.history.GetRoutineHistory(userID, since)
	if err != nil {
		return models.Consistency{}, fmt.Errorf("load routine history: %w", err)
	}

	logged := make(map[string]bool, len(history))
	for _, r := range history {
		logged[r.Day] = true
	}

	// Oldest to newest, ending today.
	lastSeven := make([]models.DayStatus, 7)
	for i := 0; i < 7; i++ {
		d := now.AddDate(0, 0, -i)
		lastSeven[6-i] = models.DayStatus{
			Day:       dates.WeekdayLetter(d.Weekday()),
			Completed: logged[dates.Day(d, e.loc)],
		}
	}

	streak := 0
	for i := 0; i < constants.ConsistencyLookbackDays; i++ {
		if logged[dates.Day(now.AddDate(0, 0, -i), e.loc)] {
			streak++
			continue
		}
		if i > 0 {
			break
		}
		// i == 0: today has no entry yet, keep walking.
	}

	completed := 0
	for _, d := range lastSeven {
		if d.Completed {
			completed++
		}
	}

	return models.Consistency{
		CompletedDays: completed,
		WeeklyGoal:    int(math.Round(float64(completed) / 7 * 100)),
		Streak:        streak,
		LastSevenDays: lastSeven,
	}, nil
}
