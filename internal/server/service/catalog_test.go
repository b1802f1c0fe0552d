package service

import (
	"context"
	"testing"

	"github.com/edusupport/edusupport/internal/catalog"
	"github.com/edusupport/edusupport/internal/server/domain"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) (*CatalogService, int64) {
	t.Helper()

	s := newTestStore(t)
	userID, err := s.Users().CreateUser(context.Background(), domain.User{
		Email:        "student@example.com",
		PasswordHash: "hash",
		FirstName:    "Est",
		LastName:     "Udiante",
	})
	require.NoError(t, err)

	return &CatalogService{
		Provider: catalog.NewStaticProvider(),
		Store:    s,
	}, userID
}

func TestSubjectDetailMergesCompletions(t *testing.T) {
	svc, userID := newCatalogService(t)
	ctx := context.Background()

	require.NoError(t, svc.MarkCompleted(ctx, userID, "filosofia-1"))
	require.NoError(t, svc.MarkCompleted(ctx, userID, "filosofia-3"))

	detail, err := svc.SubjectDetail(ctx, userID, "filosofia")
	require.NoError(t, err)

	byID := make(map[string]bool, len(detail.Modules))
	for _, m := range detail.Modules {
		byID[m.ID] = m.Completed
	}
	require.True(t, byID["filosofia-1"])
	require.False(t, byID["filosofia-2"])
	require.True(t, byID["filosofia-3"])
	require.False(t, byID["filosofia-4"])
}

func TestSubjectDetailUnknownSlug(t *testing.T) {
	svc, userID := newCatalogService(t)

	_, err := svc.SubjectDetail(context.Background(), userID, "alquimia")
	require.ErrorIs(t, err, catalog.ErrSubjectNotFound)
}

func TestCompletionsAreScopedPerUser(t *testing.T) {
	svc, userID := newCatalogService(t)
	ctx := context.Background()

	otherID, err := svc.Store.Users().CreateUser(ctx, domain.User{
		Email:        "other@example.com",
		PasswordHash: "hash",
		FirstName:    "Otr",
		LastName:     "Alumna",
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkCompleted(ctx, userID, "historia-1"))

	detail, err := svc.SubjectDetail(ctx, otherID, "historia")
	require.NoError(t, err)
	for _, m := range detail.Modules {
		require.False(t, m.Completed)
	}
}

func TestMarkCompletedUnknownModule(t *testing.T) {
	svc, userID := newCatalogService(t)

	err := svc.MarkCompleted(context.Background(), userID, "filosofia-99")
	require.ErrorIs(t, err, ErrModuleNotFound)
}

func TestMarkCompletedIdempotent(t *testing.T) {
	svc, userID := newCatalogService(t)
	ctx := context.Background()

	require.NoError(t, svc.MarkCompleted(ctx, userID, "ingles-1"))
	require.NoError(t, svc.MarkCompleted(ctx, userID, "ingles-1"))

	done, err := svc.Store.Completions().ListCompleted(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, []string{"ingles-1"}, done)
}

func TestModuleContentLookup(t *testing.T) {
	svc, _ := newCatalogService(t)
	ctx := context.Background()

	content, err := svc.ModuleContent(ctx, "filosofia-1")
	require.NoError(t, err)
	require.Equal(t, "filosofia-1", content.ID)
	require.NotEmpty(t, content.Transcript)

	_, err = svc.ModuleContent(ctx, "filosofia-2")
	require.ErrorIs(t, err, ErrModuleNotFound)
}
