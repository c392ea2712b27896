package domain

import (
	"encoding/json"
	"errors"
)

// Malformed nested structure degrades to empty values instead of failing
// the whole decode.
func (s *ScheduleResponse) UnmarshalJSON(b []byte) error {
	var raw struct {
		StopSchedule json.RawMessage `json:"stop-schedule"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var ss StopSchedule
	if lenient(raw.StopSchedule, &ss) {
		s.StopSchedule = &ss
	}
	return nil
}

func (s *StopSchedule) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if !lenient(b, &fields) {
		return nil
	}

	var items []json.RawMessage
	if !lenient(fields["route-schedules"], &items) {
		return nil
	}
	for _, item := range items {
		var rs RouteSchedule
		if lenient(item, &rs) {
			s.RouteSchedules = append(s.RouteSchedules, rs)
		}
	}
	return nil
}

func (r *RouteSchedule) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if !lenient(b, &fields) {
		return errNotObject
	}

	lenient(fields["route"], &r.Route)

	var items []json.RawMessage
	if !lenient(fields["scheduled-stops"], &items) {
		return nil
	}
	for _, item := range items {
		var ev StopEvent
		lenient(item, &ev)
		// Kept even when malformed so the extractor can apply its policy.
		r.ScheduledStops = append(r.ScheduledStops, ev)
	}
	return nil
}

var errNotObject = errors.New("not a JSON object")

func lenient(b []byte, v any) bool {
	if len(b) == 0 {
		return false
	}
	return json.Unmarshal(b, v) == nil
}

// Numbered routes arrive as JSON numbers ("number": 11), rapid transit
// routes as strings ("number": "BLUE"); both are kept as text.
func (r *Route) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if !lenient(b, &fields) {
		return nil
	}

	lenient(fields["name"], &r.Name)

	raw := fields["number"]
	var s string
	if lenient(raw, &s) {
		r.Number = s
		return nil
	}
	var n json.Number
	if lenient(raw, &n) {
		r.Number = n.String()
	}
	return nil
}
