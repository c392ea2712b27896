package domain

import (
	"encoding/json"
	"testing"
)

func TestScheduleResponseDecode(t *testing.T) {
	body := `{
		"stop-schedule": {
			"stop": {"key": 61104, "name": "Southbound Main at Stradbrook"},
			"route-schedules": [
				{
					"route": {"key": 11, "number": 11, "name": "Route 11 Portage-Kildonan"},
					"scheduled-stops": [
						{"key": "1-0", "times": {"departure": {"scheduled": "2024-01-01T08:10:00"}}}
					]
				},
				{
					"route": {"key": "BLUE", "number": "BLUE", "name": "BLUE"},
					"scheduled-stops": [
						{"key": "2-0", "times": {"departure": {"scheduled": "2024-01-01T09:05:00", "estimated": "2024-01-01T09:07:00"}}},
						{"key": "2-1", "times": {"departure": "later"}}
					]
				}
			]
		}
	}`

	var got ScheduleResponse
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rs := got.RouteSchedules()
	if len(rs) != 2 {
		t.Fatalf("expected 2 route schedules, got %d", len(rs))
	}
	if rs[0].Route.Number != "11" {
		t.Errorf("numeric route number = %q, want %q", rs[0].Route.Number, "11")
	}
	if rs[1].Route.Number != "BLUE" {
		t.Errorf("route number = %q, want %q", rs[1].Route.Number, "BLUE")
	}
	if len(rs[1].ScheduledStops) != 2 {
		t.Fatalf("expected malformed stop to be kept, got %d stops", len(rs[1].ScheduledStops))
	}
	if got := rs[1].ScheduledStops[0].ScheduledDeparture(); got != "2024-01-01T09:05:00" {
		t.Errorf("scheduled = %q", got)
	}
	if got := rs[1].ScheduledStops[1].ScheduledDeparture(); got != "" {
		t.Errorf("malformed stop scheduled = %q, want empty", got)
	}
}

func TestScheduleResponseDecodeMalformedNesting(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"stop-schedule": null}`,
		`{"stop-schedule": "unavailable"}`,
		`{"stop-schedule": {"route-schedules": {"BLUE": []}}}`,
		`{"stop-schedule": {"route-schedules": [42, "x"]}}`,
	}

	for _, body := range bodies {
		var got ScheduleResponse
		if err := json.Unmarshal([]byte(body), &got); err != nil {
			t.Errorf("%s: unexpected error: %v", body, err)
			continue
		}
		if n := len(got.RouteSchedules()); n != 0 {
			t.Errorf("%s: expected no route schedules, got %d", body, n)
		}
	}
}

func TestScheduleResponseDecodeScheduledStopsNotAList(t *testing.T) {
	body := `{"stop-schedule": {"route-schedules": [{"route": {"number": "BLUE"}, "scheduled-stops": "none"}]}}`

	var got ScheduleResponse
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rs := got.RouteSchedules()
	if len(rs) != 1 || rs[0].Route.Number != "BLUE" {
		t.Fatalf("unexpected route schedules: %+v", rs)
	}
	if len(rs[0].ScheduledStops) != 0 {
		t.Fatalf("expected no stops, got %d", len(rs[0].ScheduledStops))
	}
}
