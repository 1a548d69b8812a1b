package domain

import (
	"fmt"
	"strings"
	"time"
)

type KickType string

const (
	KickFieldGoal KickType = "Field Goal"
	KickKickoff   KickType = "Kickoff"
	KickPunt      KickType = "Punt"
)

// ReportOrder is the section order of the practice report.
var ReportOrder = []KickType{KickFieldGoal, KickPunt, KickKickoff}

func (t KickType) Validate() error {
	switch t {
	case KickFieldGoal, KickKickoff, KickPunt:
		return nil
	default:
		return fmt.Errorf("unsupported kick type %q", string(t))
	}
}

// ParseKickType accepts the display name or the short forms fg, ko and punt.
func ParseKickType(s string) (KickType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fg", "field goal", "field_goal", "fieldgoal":
		return KickFieldGoal, nil
	case "ko", "kickoff":
		return KickKickoff, nil
	case "punt", "p":
		return KickPunt, nil
	default:
		return "", fmt.Errorf("unsupported kick type %q", s)
	}
}

type FieldGoal struct {
	YardLine string `json:"yard_line"`
	Hash     string `json:"hash"`
	OpTime   string `json:"op_time"`
	Result   string `json:"result"`
	Distance string `json:"distance"`
}

type Kickoff struct {
	YardLine       string `json:"yard_line"`
	Hash           string `json:"hash"`
	ResultYardLine string `json:"result_yard_line"`
	Landing        string `json:"landing"`
	HangTime       string `json:"hang_time"`
	Distance       string `json:"distance"`
}

type Punt struct {
	KickYardLine   string `json:"kick_yard_line"`
	KickLocation   string `json:"kick_location"`
	LandedYardLine string `json:"landed_yard_line"`
	Landing        string `json:"landing"`
	Snap           string `json:"snap"`
	HandToFoot     string `json:"hand_to_foot"`
	Hang           string `json:"hang"`
	Distance       string `json:"distance"`
}

// Kick is one logged rep. Exactly one of the detail pointers matches Type.
type Kick struct {
	ID          string     `json:"id"`
	PracticeID  string     `json:"practice_id"`
	Seq         int        `json:"seq"`
	Type        KickType   `json:"type"`
	Kicker      string     `json:"kicker"`
	Longsnapper string     `json:"longsnapper"`
	Holder      string     `json:"holder"`
	LoggedAt    time.Time  `json:"logged_at"`
	FieldGoal   *FieldGoal `json:"field_goal,omitempty"`
	Kickoff     *Kickoff   `json:"kickoff,omitempty"`
	Punt        *Punt      `json:"punt,omitempty"`
}

func (k Kick) Validate() error {
	if err := k.Type.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(k.ID) == "" {
		return fmt.Errorf("kick id is required")
	}
	switch k.Type {
	case KickFieldGoal:
		if k.FieldGoal == nil {
			return fmt.Errorf("field goal details are required")
		}
	case KickKickoff:
		if k.Kickoff == nil {
			return fmt.Errorf("kickoff details are required")
		}
	case KickPunt:
		if k.Punt == nil {
			return fmt.Errorf("punt details are required")
		}
	}
	return nil
}

// YardLine is the line the kick was taken from.
func (k Kick) YardLine() string {
	switch {
	case k.FieldGoal != nil:
		return k.FieldGoal.YardLine
	case k.Kickoff != nil:
		return k.Kickoff.YardLine
	case k.Punt != nil:
		return k.Punt.KickYardLine
	}
	return ""
}

func (k Kick) Distance() string {
	switch {
	case k.FieldGoal != nil:
		return k.FieldGoal.Distance
	case k.Kickoff != nil:
		return k.Kickoff.Distance
	case k.Punt != nil:
		return k.Punt.Distance
	}
	return ""
}
