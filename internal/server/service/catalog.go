package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/edusupport/edusupport/internal/catalog"
	"github.com/edusupport/edusupport/internal/server/store"
	"github.com/edusupport/edusupport/pkg/slogx"
)

var ErrModuleNotFound = errors.New("module_not_found")

// CatalogService merges the static course catalog with per-user completion
// state from the store.
type CatalogService struct {
	Provider catalog.Provider
	Store    store.Store
}

// Subjects lists all subjects. No per-user state is involved.
func (s *CatalogService) Subjects(ctx context.Context) []catalog.Subject {
	return s.Provider.Subjects()
}

// SubjectDetail returns a subject's modules with Completed filled in for the
// requesting user.
func (s *CatalogService) SubjectDetail(ctx context.Context, userID int64, slug string) (catalog.SubjectDetail, error) {
	detail, err := s.Provider.SubjectDetail(slug)
	if err != nil {
		return catalog.SubjectDetail{}, err
	}

	done, err := s.Store.Completions().ListCompleted(ctx, userID)
	if err != nil {
		return catalog.SubjectDetail{}, err
	}

	completed := make(map[string]struct{}, len(done))
	for _, id := range done {
		completed[id] = struct{}{}
	}
	for i := range detail.Modules {
		_, detail.Modules[i].Completed = completed[detail.Modules[i].ID]
	}

	return detail, nil
}

// ModuleContent returns the lesson content for a module.
func (s *CatalogService) ModuleContent(ctx context.Context, moduleID string) (catalog.ModuleContent, error) {
	content, err := s.Provider.ModuleContent(moduleID)
	if err != nil {
		if errors.Is(err, catalog.ErrModuleNotFound) {
			return catalog.ModuleContent{}, ErrModuleNotFound
		}
		return catalog.ModuleContent{}, err
	}
	return content, nil
}

// MarkCompleted records that the user finished a module. Unknown module ids
// are rejected so the completions table only ever references real modules.
func (s *CatalogService) MarkCompleted(ctx context.Context, userID int64, moduleID string) error {
	if !s.Provider.ModuleExists(moduleID) {
		return ErrModuleNotFound
	}

	if err := s.Store.Completions().MarkCompleted(ctx, userID, moduleID, time.Now()); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("module completed",
		slog.Int64("user_id", userID),
		slog.String("module_id", moduleID),
	)
	return nil
}
