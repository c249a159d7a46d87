package matching

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bistro/internal/validate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=matching
type Repository interface {
	ListAliases(ctx context.Context) ([]*Alias, error)
	SaveAliases(ctx context.Context, aliases []*Alias) error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Suggest returns the article name for a raw spreadsheet label. The longest
// matching pattern wins, the newest on a tie. It returns "" when nothing matches.
func (s *Service) Suggest(ctx context.Context, raw string) (string, error) {
	aliases, err := s.repo.ListAliases(ctx)
	if err != nil {
		return "", err
	}

	var best *Alias

	for _, a := range aliases {
		if !a.matches(raw) {
			continue
		}

		if best == nil || len(a.Pattern) > len(best.Pattern) ||
			(len(a.Pattern) == len(best.Pattern) && a.CreatedAt.After(best.CreatedAt)) {
			best = a
		}
	}

	if best == nil {
		return "", nil
	}

	return best.Article, nil
}

type LearnParams struct {
	Pattern string `validate:"required"`
	Article string `validate:"required"`
}

// Learn remembers that labels containing pattern mean article. Learning an
// existing pattern again replaces its article.
func (s *Service) Learn(ctx context.Context, params LearnParams) (*Alias, error) {
	params.Pattern = strings.TrimSpace(params.Pattern)
	params.Article = strings.TrimSpace(params.Article)

	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	aliases, err := s.repo.ListAliases(ctx)
	if err != nil {
		return nil, err
	}

	aliases = slices.DeleteFunc(aliases, func(a *Alias) bool { return strings.EqualFold(a.Pattern, params.Pattern) })

	alias := &Alias{
		ID:        uuid.New(),
		Pattern:   params.Pattern,
		Article:   params.Article,
		CreatedAt: s.now(),
	}

	if err := s.repo.SaveAliases(ctx, append(aliases, alias)); err != nil {
		return nil, fmt.Errorf("saving aliases: %w", err)
	}

	return alias, nil
}

func (s *Service) List(ctx context.Context) ([]*Alias, error) {
	return s.repo.ListAliases(ctx)
}

func (s *Service) Forget(ctx context.Context, id uuid.UUID) error {
	aliases, err := s.repo.ListAliases(ctx)
	if err != nil {
		return err
	}

	n := len(aliases)

	aliases = slices.DeleteFunc(aliases, func(a *Alias) bool { return a.ID == id })
	if len(aliases) == n {
		return ErrNotFound
	}

	return s.repo.SaveAliases(ctx, aliases)
}
