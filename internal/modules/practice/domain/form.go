package domain

import "strings"

// Form element ids. Stopwatches write into the timing ids directly.
const (
	FieldKicker      = "kicker"
	FieldLongsnapper = "longsnapper"
	FieldHolder      = "holder"

	FieldFGYardLine = "fg_yard_line"
	FieldFGHash     = "fg_hash"
	FieldFGOpTime   = "fg_op_time"
	FieldFGResult   = "fg_result"

	FieldKOYardLine       = "ko_yard_line"
	FieldKOHash           = "ko_hash"
	FieldKOResultYardLine = "ko_result_yard_line"
	FieldKOLocation       = "ko_location"
	FieldKOHangTime       = "ko_hang_time"

	FieldPuntKickYardLine   = "punt_kick_yl"
	FieldPuntKickLocation   = "punt_kick_loc"
	FieldPuntLandedYardLine = "punt_landed_yl"
	FieldPuntLandedLocation = "punt_landed_loc"
	FieldPuntSnap           = "punt_snap_time"
	FieldPuntHandToFoot     = "punt_hand_to_foot"
	FieldPuntHang           = "punt_hang_time"
)

// KickFromForm builds a kick of type t from form values, deriving distances.
// Identity fields (ID, PracticeID, Seq, LoggedAt) are left to the caller.
func KickFromForm(t KickType, form map[string]string) Kick {
	get := func(id string) string { return strings.TrimSpace(form[id]) }
	k := Kick{
		Type:        t,
		Kicker:      get(FieldKicker),
		Longsnapper: get(FieldLongsnapper),
		Holder:      get(FieldHolder),
	}
	switch t {
	case KickFieldGoal:
		yl := get(FieldFGYardLine)
		k.FieldGoal = &FieldGoal{
			YardLine: yl,
			Hash:     get(FieldFGHash),
			OpTime:   get(FieldFGOpTime),
			Result:   get(FieldFGResult),
			Distance: FieldGoalDistance(yl),
		}
	case KickKickoff:
		yl, res := get(FieldKOYardLine), get(FieldKOResultYardLine)
		k.Kickoff = &Kickoff{
			YardLine:       yl,
			Hash:           get(FieldKOHash),
			ResultYardLine: res,
			Landing:        get(FieldKOLocation),
			HangTime:       get(FieldKOHangTime),
			Distance:       Distance(yl, res),
		}
	case KickPunt:
		from, to := get(FieldPuntKickYardLine), get(FieldPuntLandedYardLine)
		k.Punt = &Punt{
			KickYardLine:   from,
			KickLocation:   get(FieldPuntKickLocation),
			LandedYardLine: to,
			Landing:        get(FieldPuntLandedLocation),
			Snap:           get(FieldPuntSnap),
			HandToFoot:     get(FieldPuntHandToFoot),
			Hang:           get(FieldPuntHang),
			Distance:       Distance(from, to),
		}
	}
	return k
}
