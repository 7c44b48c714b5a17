package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kristofferme/leader/internal/model"
	"github.com/kristofferme/leader/internal/repository"
	"github.com/kristofferme/leader/internal/validation"
)

// pulseDateLayouts are accepted for the optional date override: a calendar
// date (midnight) or a datetime-local value.
var pulseDateLayouts = []string{
	"2006-01-02T15:04",
	model.DateKeyLayout,
}

type PulseService struct {
	repo repository.Repository[model.Pulse]
	cal  calendar
}

func NewPulseService(repo repository.Repository[model.Pulse], now Clock, loc *time.Location) *PulseService {
	return &PulseService{
		repo: repo,
		cal:  newCalendar(now, loc),
	}
}

// Log records a pulse. Both score and notes are required; date is optional and
// defaults to now.
func (s *PulseService) Log(ctx context.Context, score int, notes, date string) (*model.Pulse, error) {
	err := validation.Score(score, model.PulseMinScore, model.PulseMaxScore)
	if err != nil {
		return nil, err
	}

	notes, err = validation.Required("notes", notes)
	if err != nil {
		return nil, err
	}

	timestamp, err := s.timestamp(date)
	if err != nil {
		return nil, err
	}

	pulse := &model.Pulse{
		Record:    s.cal.stamp(),
		Score:     score,
		Notes:     notes,
		Timestamp: timestamp,
	}

	_, err = s.repo.Create(ctx, pulse)
	if err != nil {
		return nil, fmt.Errorf("failed to log pulse: %w", err)
	}

	return pulse, nil
}

// Recent returns the newest pulses first.
func (s *PulseService) Recent(ctx context.Context, limit int) ([]*model.Pulse, error) {
	return s.repo.List(ctx, repository.ListOptions{OrderBy: "timestamp", Desc: true, Limit: limit})
}

// All returns every pulse, oldest first.
func (s *PulseService) All(ctx context.Context) ([]*model.Pulse, error) {
	return s.repo.List(ctx, repository.ListOptions{OrderBy: "timestamp"})
}

func (s *PulseService) timestamp(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return s.cal.now().UTC(), nil
	}

	for _, layout := range pulseDateLayouts {
		t, err := time.ParseInLocation(layout, date, s.cal.loc)
		if err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: pulse date %q", validation.ErrInvalid, date)
}
