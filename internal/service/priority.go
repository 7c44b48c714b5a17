package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kristofferme/leader/internal/model"
	"github.com/kristofferme/leader/internal/repository"
	"github.com/kristofferme/leader/internal/validation"
)

type PriorityService struct {
	repo repository.Repository[model.Priority]
	cal  calendar
}

func NewPriorityService(repo repository.Repository[model.Priority], now Clock, loc *time.Location) *PriorityService {
	return &PriorityService{
		repo: repo,
		cal:  newCalendar(now, loc),
	}
}

func (s *PriorityService) Add(ctx context.Context, title, impact string) (*model.Priority, error) {
	title, err := validation.Required("title", title)
	if err != nil {
		return nil, err
	}

	impact, err = validation.Optional("impact", impact)
	if err != nil {
		return nil, err
	}

	priority := &model.Priority{
		Record: s.cal.stamp(),
		Title:  title,
		Impact: impact,
	}

	_, err = s.repo.Create(ctx, priority)
	if err != nil {
		return nil, fmt.Errorf("failed to add priority: %w", err)
	}

	return priority, nil
}

// Toggle flips the completed flag and returns the updated priority.
func (s *PriorityService) Toggle(ctx context.Context, id string) (*model.Priority, error) {
	priority, err := s.repo.Toggle(ctx, id, "completed")
	if err != nil {
		return nil, fmt.Errorf("failed to toggle priority: %w", err)
	}

	return priority, nil
}

// List returns priorities, newest first.
func (s *PriorityService) List(ctx context.Context) ([]*model.Priority, error) {
	return s.repo.List(ctx, repository.ListOptions{OrderBy: "created_at", Desc: true})
}
