package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kristofferme/leader/internal/model"
	"github.com/kristofferme/leader/internal/repository"
	"github.com/kristofferme/leader/internal/validation"
)

type AdminService struct {
	repo repository.Repository[model.AdminTask]
	cal  calendar
}

func NewAdminService(repo repository.Repository[model.AdminTask], now Clock, loc *time.Location) *AdminService {
	return &AdminService{
		repo: repo,
		cal:  newCalendar(now, loc),
	}
}

// Add records an admin task; due is an optional YYYY-MM-DD date.
func (s *AdminService) Add(ctx context.Context, task, due string) (*model.AdminTask, error) {
	task, err := validation.Required("task", task)
	if err != nil {
		return nil, err
	}

	due, err = validation.Optional("due", due)
	if err != nil {
		return nil, err
	}

	if due != "" {
		err = validation.Date("due", due)
		if err != nil {
			return nil, err
		}
	}

	adminTask := &model.AdminTask{
		Record: s.cal.stamp(),
		Task:   task,
		Due:    due,
	}

	_, err = s.repo.Create(ctx, adminTask)
	if err != nil {
		return nil, fmt.Errorf("failed to add admin task: %w", err)
	}

	return adminTask, nil
}

// Toggle flips the completed flag and returns the updated task.
func (s *AdminService) Toggle(ctx context.Context, id string) (*model.AdminTask, error) {
	task, err := s.repo.Toggle(ctx, id, "completed")
	if err != nil {
		return nil, fmt.Errorf("failed to toggle admin task: %w", err)
	}

	return task, nil
}

// List returns admin tasks, newest first.
func (s *AdminService) List(ctx context.Context) ([]*model.AdminTask, error) {
	return s.repo.List(ctx, repository.ListOptions{OrderBy: "created_at", Desc: true})
}
