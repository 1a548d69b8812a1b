package bootstrap

import (
	"github.com/rs/zerolog"

	practicedomain "kickclock/internal/modules/practice/domain"
	stopwatchoutadapter "kickclock/internal/modules/stopwatch/adapter/out"
	stopwatchservice "kickclock/internal/modules/stopwatch/service"
	"kickclock/internal/platform/clock"
	"kickclock/internal/ui/views/drill"
)

// Stopwatch names and the elements they display into.
const (
	StopwatchFieldGoal = "fg"
	StopwatchKickoff   = "ko"
	StopwatchPunt      = "punt"

	displayFieldGoal = "fg_timer"
	displayKickoff   = "ko_timer"
	displayPunt      = "punt_timer"
)

var (
	hashes    = []string{"L", "M", "R"}
	locations = []string{"Left", "Middle", "Right", "Sideline", "Touchback"}
	fgResults = []string{"Good", "Miss L", "Miss R", "Short", "Blocked"}
)

// newStopwatches builds the three drill stopwatches, each writing its display
// and timing fields into the shared element set.
func newStopwatches(clk clock.Clock, elements *stopwatchoutadapter.ElementSet, logger zerolog.Logger) []stopwatchservice.Stopwatch {
	log := logger.With().Str("module", "stopwatch").Logger()
	return []stopwatchservice.Stopwatch{
		stopwatchservice.NewSingleStopwatch(StopwatchFieldGoal, clk,
			elements.Element(displayFieldGoal),
			elements.Element(practicedomain.FieldFGOpTime), log),
		stopwatchservice.NewSingleStopwatch(StopwatchKickoff, clk,
			elements.Element(displayKickoff),
			elements.Element(practicedomain.FieldKOHangTime), log),
		stopwatchservice.NewPuntStopwatch(StopwatchPunt, clk,
			elements.Element(displayPunt),
			stopwatchservice.PuntFields{
				Snap:       elements.Element(practicedomain.FieldPuntSnap),
				HandToFoot: elements.Element(practicedomain.FieldPuntHandToFoot),
				Hang:       elements.Element(practicedomain.FieldPuntHang),
			}, log),
	}
}

func identityFields(holder bool) []drill.FieldSpec {
	fields := []drill.FieldSpec{
		{ID: practicedomain.FieldKicker, Label: "Kicker", Kind: drill.FieldText, Keep: true},
		{ID: practicedomain.FieldLongsnapper, Label: "Longsnapper", Kind: drill.FieldText, Keep: true},
	}
	if holder {
		fields = append(fields, drill.FieldSpec{ID: practicedomain.FieldHolder, Label: "Holder", Kind: drill.FieldText, Keep: true})
	}
	return fields
}

// DrillSpecs lays out the Field Goal, Kickoff and Punt tabs, in that order.
func DrillSpecs() []drill.Spec {
	return []drill.Spec{
		{
			KickType:  string(practicedomain.KickFieldGoal),
			Title:     "Field Goal · operation time",
			Stopwatch: StopwatchFieldGoal,
			DisplayID: displayFieldGoal,
			Fields: append(identityFields(true),
				drill.FieldSpec{ID: practicedomain.FieldFGYardLine, Label: "Yard line", Kind: drill.FieldNumeric},
				drill.FieldSpec{ID: practicedomain.FieldFGHash, Label: "Hash", Kind: drill.FieldChoice, Choices: hashes},
				drill.FieldSpec{ID: practicedomain.FieldFGOpTime, Label: "Op time", Kind: drill.FieldNumeric},
				drill.FieldSpec{ID: practicedomain.FieldFGResult, Label: "Result", Kind: drill.FieldChoice, Choices: fgResults},
			),
		},
		{
			KickType:  string(practicedomain.KickKickoff),
			Title:     "Kickoff · hang time",
			Stopwatch: StopwatchKickoff,
			DisplayID: displayKickoff,
			Fields: []drill.FieldSpec{
				{ID: practicedomain.FieldKicker, Label: "Kicker", Kind: drill.FieldText, Keep: true},
				{ID: practicedomain.FieldKOYardLine, Label: "Yard line", Kind: drill.FieldNumeric},
				{ID: practicedomain.FieldKOHash, Label: "Hash", Kind: drill.FieldChoice, Choices: hashes},
				{ID: practicedomain.FieldKOResultYardLine, Label: "Result yard line", Kind: drill.FieldNumeric},
				{ID: practicedomain.FieldKOLocation, Label: "Landing", Kind: drill.FieldChoice, Choices: locations},
				{ID: practicedomain.FieldKOHangTime, Label: "Hang time", Kind: drill.FieldNumeric},
			},
		},
		{
			KickType:  string(practicedomain.KickPunt),
			Title:     "Punt · snap, hand-to-foot, hang",
			Stopwatch: StopwatchPunt,
			DisplayID: displayPunt,
			Fields: append(identityFields(false),
				drill.FieldSpec{ID: practicedomain.FieldPuntKickYardLine, Label: "Kick yard line", Kind: drill.FieldNumeric},
				drill.FieldSpec{ID: practicedomain.FieldPuntKickLocation, Label: "Kick location", Kind: drill.FieldChoice, Choices: hashes},
				drill.FieldSpec{ID: practicedomain.FieldPuntLandedYardLine, Label: "Landed yard line", Kind: drill.FieldNumeric},
				drill.FieldSpec{ID: practicedomain.FieldPuntLandedLocation, Label: "Landing", Kind: drill.FieldChoice, Choices: locations},
				drill.FieldSpec{ID: practicedomain.FieldPuntSnap, Label: "Snap", Kind: drill.FieldNumeric},
				drill.FieldSpec{ID: practicedomain.FieldPuntHandToFoot, Label: "Hand-to-foot", Kind: drill.FieldNumeric},
				drill.FieldSpec{ID: practicedomain.FieldPuntHang, Label: "Hang", Kind: drill.FieldNumeric},
			),
		},
	}
}
