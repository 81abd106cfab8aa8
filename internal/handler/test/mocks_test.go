package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"feedapi/internal/models"
	"feedapi/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req service.SignupRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAuthService) GetStatus(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) UpdateStatus(ctx context.Context, userID, status string) error {
	args := m.Called(ctx, userID, status)
	return args.Error(0)
}

type MockFeedService struct {
	mock.Mock
}

func (m *MockFeedService) ListPosts(ctx context.Context, page, pageSize int) ([]models.Post, int, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Post), args.Int(1), args.Error(2)
}

func (m *MockFeedService) CreatePost(ctx context.Context, creatorID string, req service.CreatePostRequest) (*models.Post, *models.User, error) {
	args := m.Called(ctx, creatorID, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Post), args.Get(1).(*models.User), args.Error(2)
}

func (m *MockFeedService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockFeedService) UpdatePost(ctx context.Context, requesterID, postID string, req service.UpdatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, requesterID, postID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockFeedService) DeletePost(ctx context.Context, requesterID, postID string) error {
	args := m.Called(ctx, requesterID, postID)
	return args.Error(0)
}
