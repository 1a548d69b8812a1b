package dto

import "time"

type StartInput struct {
	Title string
	Date  string
}

type LogKickInput struct {
	Type string
	// Form holds element values keyed by the ids in domain/form.go.
	Form map[string]string
}

type KickOutput struct {
	ID          string
	PracticeID  string
	Seq         int
	Type        string
	Kicker      string
	Longsnapper string
	Holder      string
	YardLine    string
	Distance    string
	Detail      map[string]string
	LoggedAt    time.Time
}

type PracticeOutput struct {
	ID        string
	Title     string
	Date      string
	StartedAt time.Time
	Kicks     []KickOutput
	Counts    map[string]int
}

type EndOutput struct {
	PracticeID string
	Date       string
	Path       string
	Kicks      int
	Counts     map[string]int
}
