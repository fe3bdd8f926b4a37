package model

type GoalUnit string

const (
	UnitMinutes GoalUnit = "minutes"
	UnitPages   GoalUnit = "pages"
)

type GoalPeriod string

const (
	PeriodDaily   GoalPeriod = "daily"
	PeriodWeekly  GoalPeriod = "weekly"
	PeriodMonthly GoalPeriod = "monthly"
)

type Goal struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Target       int        `json:"target"`
	Current      int        `json:"current"`
	Unit         GoalUnit   `json:"unit"`
	Period       GoalPeriod `json:"period"`
	Completed    bool       `json:"completed"`
	ReminderTime string     `json:"reminderTime,omitempty"` // "HH:MM"
	Subject      string     `json:"subject,omitempty"`
}

func DefaultGoals() []Goal {
	return []Goal{
		{ID: "1", Title: "Read for 30 minutes", Target: 30, Unit: UnitMinutes, Period: PeriodDaily, ReminderTime: "18:00"},
		{ID: "2", Title: "Read 20 Pages", Target: 20, Unit: UnitPages, Period: PeriodDaily},
		{ID: "3", Title: "Finish 1 Book", Target: 1, Unit: UnitPages, Period: PeriodWeekly},
	}
}
