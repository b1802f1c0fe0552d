package authsdk

import (
	"context"
	"fmt"
	"net/url"
	"sync"
)

// Session is an authenticated session. Tokens are stateless JWTs with no
// refresh flow; when the token expires the caller must log in again.
type Session struct {
	client *SDKClient

	mu    sync.RWMutex
	token string
}

func newSession(client *SDKClient, token string) *Session {
	return &Session{
		client: client,
		token:  token,
	}
}

// Token returns the session JWT, e.g. for persisting to a TokenStore.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) bearer() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", fmt.Errorf("session has no token; log in first")
	}
	return s.token, nil
}

// UserInfo fetches the authenticated user's profile.
func (s *Session) UserInfo(ctx context.Context) (*UserInfoResponse, error) {
	token, err := s.bearer()
	if err != nil {
		return nil, err
	}

	var info UserInfoResponse
	if err := s.client.getJSON(ctx, "/v1/userinfo", token, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Subjects lists the course catalog.
func (s *Session) Subjects(ctx context.Context) ([]Subject, error) {
	token, err := s.bearer()
	if err != nil {
		return nil, err
	}

	var subjects []Subject
	if err := s.client.getJSON(ctx, "/v1/subjects", token, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

// SubjectDetail fetches a subject's modules with this user's completion state.
func (s *Session) SubjectDetail(ctx context.Context, slug string) (*SubjectDetail, error) {
	token, err := s.bearer()
	if err != nil {
		return nil, err
	}

	var detail SubjectDetail
	path := "/v1/subjects/" + url.PathEscape(slug)
	if err := s.client.getJSON(ctx, path, token, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ModuleContent fetches the audio lesson and transcript for a module.
func (s *Session) ModuleContent(ctx context.Context, slug, moduleID string) (*ModuleContent, error) {
	token, err := s.bearer()
	if err != nil {
		return nil, err
	}

	var content ModuleContent
	path := "/v1/subjects/" + url.PathEscape(slug) + "/modules/" + url.PathEscape(moduleID)
	if err := s.client.getJSON(ctx, path, token, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

// CompleteModule marks a module as completed for this user.
func (s *Session) CompleteModule(ctx context.Context, moduleID string) error {
	token, err := s.bearer()
	if err != nil {
		return err
	}

	path := "/v1/subjects/modules/" + url.PathEscape(moduleID) + "/complete"
	return s.client.postJSON(ctx, path, token, nil, nil)
}
