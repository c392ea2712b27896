package transit

import (
	"bus-schedule-skill/internal/domain"
	"context"
	"fmt"
	"sync"
)

// MockScheduleProvider serves canned payloads (or errors) per stop ID.
type MockScheduleProvider struct {
	mu        sync.Mutex
	schedules map[string]*domain.ScheduleResponse
	errs      map[string]error
	calls     int
}

func NewMockScheduleProvider(schedules map[string]*domain.ScheduleResponse) *MockScheduleProvider {
	if schedules == nil {
		schedules = map[string]*domain.ScheduleResponse{}
	}
	return &MockScheduleProvider{schedules: schedules, errs: map[string]error{}}
}

// FailWith makes every fetch for stopID return err.
func (p *MockScheduleProvider) FailWith(stopID string, err error) *MockScheduleProvider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errs[stopID] = err
	return p
}

func (p *MockScheduleProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *MockScheduleProvider) FetchSchedule(ctx context.Context, stopID string) (*domain.ScheduleResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++

	if err, ok := p.errs[stopID]; ok {
		return nil, err
	}
	s, ok := p.schedules[stopID]
	if !ok {
		return nil, &domain.ScheduleFetchError{Status: 404, Cause: fmt.Sprintf("no schedule for stop %s", stopID)}
	}
	return s, nil
}
