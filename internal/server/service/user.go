package service

import (
	"context"

	"github.com/edusupport/edusupport/internal/server/domain"
	"github.com/edusupport/edusupport/internal/server/store"
)

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID int64) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}
