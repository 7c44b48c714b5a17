package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/kristofferme/leader/internal/markdown"
	"github.com/kristofferme/leader/internal/model"
	"github.com/kristofferme/leader/internal/repository"
	"github.com/kristofferme/leader/internal/validation"
)

var ErrNoPrompts = errors.New("no reflection prompts configured")

// Picker returns an index in [0, n).
type Picker func(n int) int

type promptFile struct {
	Prompts []string `yaml:"prompts"`
}

// LoadPrompts reads the reflection prompt pool from the frontmatter of a
// markdown file.
func LoadPrompts(fsys fs.FS, name string, parser *markdown.Parser) ([]string, error) {
	source, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts: %w", err)
	}

	var file promptFile
	ok, err := parser.DecodeFrontmatter(source, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode prompts: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: missing frontmatter", name)
	}

	prompts := make([]string, 0, len(file.Prompts))
	for _, p := range file.Prompts {
		p = strings.TrimSpace(p)
		if p != "" {
			prompts = append(prompts, p)
		}
	}

	if len(prompts) == 0 {
		return nil, ErrNoPrompts
	}

	return prompts, nil
}

type PromptService struct {
	repo    repository.Repository[model.FavoritePrompt]
	prompts []string
	pick    Picker
	cal     calendar
}

func NewPromptService(repo repository.Repository[model.FavoritePrompt], prompts []string, pick Picker, now Clock) *PromptService {
	if pick == nil {
		pick = rand.IntN
	}
	return &PromptService{
		repo:    repo,
		prompts: prompts,
		pick:    pick,
		cal:     newCalendar(now, time.UTC),
	}
}

// Draw returns a random prompt from the pool.
func (s *PromptService) Draw() (string, error) {
	if len(s.prompts) == 0 {
		return "", ErrNoPrompts
	}
	return s.prompts[s.pick(len(s.prompts))], nil
}

// Save stores text as a favorite. Saving a prompt that is already a favorite
// returns the existing record and created=false.
func (s *PromptService) Save(ctx context.Context, text string) (*model.FavoritePrompt, bool, error) {
	text, err := validation.Required("prompt", text)
	if err != nil {
		return nil, false, err
	}

	byText := repository.ListOptions{
		Where: []repository.Filter{{Field: "text", Value: text}},
	}

	existing, err := s.repo.First(ctx, byText)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	favorite := &model.FavoritePrompt{
		Record: s.cal.stamp(),
		Text:   text,
	}

	_, err = s.repo.Create(ctx, favorite)
	if errors.Is(err, repository.ErrConflict) {
		// saved concurrently by another request
		existing, err = s.repo.First(ctx, byText)
		if err != nil {
			return nil, false, fmt.Errorf("failed to read saved favorite: %w", err)
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to save favorite: %w", err)
	}

	return favorite, true, nil
}

func (s *PromptService) Remove(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// Favorites returns saved prompts, newest first.
func (s *PromptService) Favorites(ctx context.Context) ([]*model.FavoritePrompt, error) {
	return s.repo.List(ctx, repository.ListOptions{OrderBy: "created_at", Desc: true})
}
