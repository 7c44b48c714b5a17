package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kristofferme/leader/internal/model"
	"github.com/kristofferme/leader/internal/repository"
	"github.com/kristofferme/leader/internal/validation"
)

type DecisionService struct {
	repo repository.Repository[model.Decision]
	cal  calendar
}

func NewDecisionService(repo repository.Repository[model.Decision], now Clock, loc *time.Location) *DecisionService {
	return &DecisionService{
		repo: repo,
		cal:  newCalendar(now, loc),
	}
}

func (s *DecisionService) Log(ctx context.Context, topic, decisionContext, outcome string) (*model.Decision, error) {
	topic, err := validation.Required("topic", topic)
	if err != nil {
		return nil, err
	}

	decisionContext, err = validation.Optional("context", decisionContext)
	if err != nil {
		return nil, err
	}

	outcome, err = validation.Optional("outcome", outcome)
	if err != nil {
		return nil, err
	}

	decision := &model.Decision{
		Record:  s.cal.stamp(),
		Topic:   topic,
		Context: decisionContext,
		Outcome: outcome,
	}

	_, err = s.repo.Create(ctx, decision)
	if err != nil {
		return nil, fmt.Errorf("failed to log decision: %w", err)
	}

	return decision, nil
}

// Recent returns the newest decisions first.
func (s *DecisionService) Recent(ctx context.Context, limit int) ([]*model.Decision, error) {
	return s.repo.List(ctx, repository.ListOptions{OrderBy: "created_at", Desc: true, Limit: limit})
}
