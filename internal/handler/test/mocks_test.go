package test

import (
	"context"
	"io"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"

	"socialgram/internal/models"
	"socialgram/internal/repository"
	"socialgram/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*jwt.Token, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.Token), args.Error(1)
}

func (m *MockAuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, req repository.UpdateProfileRequest) (*models.Profile, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockUserService) UploadAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64, contentType string) (*models.Profile, error) {
	args := m.Called(ctx, userID, fileName, file, size, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

type MockFollowService struct {
	mock.Mock
}

func (m *MockFollowService) Follow(ctx context.Context, actorID, targetID string) (*models.Follow, error) {
	args := m.Called(ctx, actorID, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Follow), args.Error(1)
}

func (m *MockFollowService) Unfollow(ctx context.Context, actorID, targetID string) error {
	args := m.Called(ctx, actorID, targetID)
	return args.Error(0)
}

func (m *MockFollowService) ListFollowers(ctx context.Context, userID string) ([]models.FollowEdge, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FollowEdge), args.Error(1)
}

func (m *MockFollowService) ListFollowing(ctx context.Context, userID string) ([]models.FollowEdge, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FollowEdge), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, req repository.CreatePostRequest, image *service.ImageUpload) (*models.Post, error) {
	args := m.Called(ctx, req, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) ListPosts(ctx context.Context, limit, offset int) ([]models.Post, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Post), args.Int(1), args.Error(2)
}

func (m *MockPostService) ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, actor *models.User, req repository.UpdatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, actor *models.User, postID string) error {
	args := m.Called(ctx, actor, postID)
	return args.Error(0)
}

func (m *MockPostService) Like(ctx context.Context, actorID, postID string) (*models.Like, error) {
	args := m.Called(ctx, actorID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Like), args.Error(1)
}

func (m *MockPostService) Unlike(ctx context.Context, actorID, postID string) error {
	args := m.Called(ctx, actorID, postID)
	return args.Error(0)
}

func (m *MockPostService) ListLikes(ctx context.Context, postID string) ([]models.Like, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Like), args.Error(1)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) CreateReport(ctx context.Context, actor *models.User, postID, reason string) (*models.Report, error) {
	args := m.Called(ctx, actor, postID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockReportService) Summarize(ctx context.Context, postID string) (*models.ReportSummary, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReportSummary), args.Error(1)
}

func (m *MockReportService) Moderate(ctx context.Context, actor *models.User, reportID, newStatus string) (*models.Report, error) {
	args := m.Called(ctx, actor, reportID, newStatus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockReportService) ListReports(ctx context.Context, actor *models.User) ([]models.Report, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
}

var _ service.AuthService = (*MockAuthService)(nil)
var _ service.UserService = (*MockUserService)(nil)
var _ service.FollowService = (*MockFollowService)(nil)
var _ service.PostService = (*MockPostService)(nil)
var _ service.ReportService = (*MockReportService)(nil)
