package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kristofferme/leader/internal/model"
	"github.com/kristofferme/leader/internal/repository"
	"github.com/kristofferme/leader/internal/validation"
)

type OneOnOneService struct {
	repo repository.Repository[model.OneOnOne]
	cal  calendar
}

func NewOneOnOneService(repo repository.Repository[model.OneOnOne], now Clock, loc *time.Location) *OneOnOneService {
	return &OneOnOneService{
		repo: repo,
		cal:  newCalendar(now, loc),
	}
}

func (s *OneOnOneService) Add(ctx context.Context, name, date, agenda string) (*model.OneOnOne, error) {
	name, err := validation.Required("name", name)
	if err != nil {
		return nil, err
	}

	date, err = validation.Required("date", date)
	if err != nil {
		return nil, err
	}

	err = validation.Date("date", date)
	if err != nil {
		return nil, err
	}

	agenda, err = validation.Optional("agenda", agenda)
	if err != nil {
		return nil, err
	}

	meeting := &model.OneOnOne{
		Record: s.cal.stamp(),
		Name:   name,
		Date:   date,
		Agenda: agenda,
		Status: model.OneOnOneStatusPlanned,
	}

	_, err = s.repo.Create(ctx, meeting)
	if err != nil {
		return nil, fmt.Errorf("failed to add one-on-one: %w", err)
	}

	return meeting, nil
}

// Toggle switches the meeting between planned and done.
func (s *OneOnOneService) Toggle(ctx context.Context, id string) (*model.OneOnOne, error) {
	meeting, err := s.repo.Alternate(ctx, id, "status", model.OneOnOneStatusDone, model.OneOnOneStatusPlanned)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle one-on-one: %w", err)
	}

	return meeting, nil
}

// List returns meetings by date, earliest first.
func (s *OneOnOneService) List(ctx context.Context) ([]*model.OneOnOne, error) {
	return s.repo.List(ctx, repository.ListOptions{OrderBy: "date"})
}
