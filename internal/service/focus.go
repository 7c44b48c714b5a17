package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kristofferme/leader/internal/model"
	"github.com/kristofferme/leader/internal/repository"
	"github.com/kristofferme/leader/internal/validation"
)

type FocusService struct {
	repo repository.Repository[model.FocusMarker]
	cal  calendar
}

func NewFocusService(repo repository.Repository[model.FocusMarker], now Clock, loc *time.Location) *FocusService {
	return &FocusService{
		repo: repo,
		cal:  newCalendar(now, loc),
	}
}

// Set records a new focus marker for today. Earlier markers for the same day
// are kept; the latest one wins.
func (s *FocusService) Set(ctx context.Context, text string) (*model.FocusMarker, error) {
	text, err := validation.Required("focus", text)
	if err != nil {
		return nil, err
	}

	marker := &model.FocusMarker{
		Record:  s.cal.stamp(),
		Text:    text,
		DateKey: s.cal.Today(),
	}

	_, err = s.repo.Create(ctx, marker)
	if err != nil {
		return nil, fmt.Errorf("failed to set focus: %w", err)
	}

	return marker, nil
}

// Clear removes every marker recorded for today.
func (s *FocusService) Clear(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteWhere(ctx, repository.Filter{Field: "date_key", Value: s.cal.Today()})
	if err != nil {
		return 0, fmt.Errorf("failed to clear focus: %w", err)
	}
	return n, nil
}

// Today returns the latest marker for today, or nil when none is set.
func (s *FocusService) Today(ctx context.Context) (*model.FocusMarker, error) {
	marker, err := s.repo.First(ctx, repository.ListOptions{
		Where:   []repository.Filter{{Field: "date_key", Value: s.cal.Today()}},
		OrderBy: "id",
		Desc:    true,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return marker, nil
}

func (s *FocusService) All(ctx context.Context) ([]*model.FocusMarker, error) {
	return s.repo.List(ctx, repository.ListOptions{OrderBy: "date_key"})
}
