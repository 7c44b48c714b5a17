package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kristofferme/leader/internal/model"
	"github.com/kristofferme/leader/internal/repository"
	"github.com/kristofferme/leader/internal/validation"
)

type DelegationService struct {
	repo repository.Repository[model.Delegation]
	cal  calendar
}

func NewDelegationService(repo repository.Repository[model.Delegation], now Clock, loc *time.Location) *DelegationService {
	return &DelegationService{
		repo: repo,
		cal:  newCalendar(now, loc),
	}
}

func (s *DelegationService) Add(ctx context.Context, name, task, support string) (*model.Delegation, error) {
	name, err := validation.Required("name", name)
	if err != nil {
		return nil, err
	}

	task, err = validation.Required("task", task)
	if err != nil {
		return nil, err
	}

	support, err = validation.Optional("support", support)
	if err != nil {
		return nil, err
	}

	delegation := &model.Delegation{
		Record:  s.cal.stamp(),
		Name:    name,
		Task:    task,
		Support: support,
		Status:  model.DelegationStatusActive,
	}

	_, err = s.repo.Create(ctx, delegation)
	if err != nil {
		return nil, fmt.Errorf("failed to add delegation: %w", err)
	}

	return delegation, nil
}

// Toggle switches the delegation between active and done.
func (s *DelegationService) Toggle(ctx context.Context, id string) (*model.Delegation, error) {
	delegation, err := s.repo.Alternate(ctx, id, "status", model.DelegationStatusDone, model.DelegationStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle delegation: %w", err)
	}

	return delegation, nil
}

// List returns delegations, newest first.
func (s *DelegationService) List(ctx context.Context) ([]*model.Delegation, error) {
	return s.repo.List(ctx, repository.ListOptions{OrderBy: "created_at", Desc: true})
}
