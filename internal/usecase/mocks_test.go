package usecase_test

import (
	"context"
	"os"
	"testing"

	"go-blog-backend/internal/domain"
	"go-blog-backend/pkg/email"
	"go-blog-backend/pkg/logger"

	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockBlogRepo struct {
	mock.Mock
}

func (m *MockBlogRepo) Create(ctx context.Context, blog *domain.Blog) error {
	return m.Called(ctx, blog).Error(0)
}
func (m *MockBlogRepo) GetByID(ctx context.Context, id string) (*domain.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Blog), args.Error(1)
}
func (m *MockBlogRepo) GetBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Blog), args.Error(1)
}
func (m *MockBlogRepo) Fetch(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.Blog, int64, error) {
	args := m.Called(ctx, publishedOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Blog), args.Get(1).(int64), args.Error(2)
}
func (m *MockBlogRepo) FetchByAuthor(ctx context.Context, authorID string, publishedOnly bool, limit, offset int) ([]domain.Blog, int64, error) {
	args := m.Called(ctx, authorID, publishedOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Blog), args.Get(1).(int64), args.Error(2)
}
func (m *MockBlogRepo) Update(ctx context.Context, blog *domain.Blog) error {
	return m.Called(ctx, blog).Error(0)
}
func (m *MockBlogRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockBlogRepo) IncrementViews(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockBlogRepo) AdjustLikesCount(ctx context.Context, id string, delta int) error {
	return m.Called(ctx, id, delta).Error(0)
}
func (m *MockBlogRepo) AdjustCommentsCount(ctx context.Context, id string, delta int) error {
	return m.Called(ctx, id, delta).Error(0)
}

type MockTokenRepo struct {
	mock.Mock
}

func (m *MockTokenRepo) Store(ctx context.Context, token *domain.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}
func (m *MockTokenRepo) Exists(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}
func (m *MockTokenRepo) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}
func (m *MockTokenRepo) DeleteByUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	return m.Called(ctx, comment).Error(0)
}
func (m *MockCommentRepo) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}
func (m *MockCommentRepo) FetchByBlog(ctx context.Context, blogID string) ([]domain.Comment, error) {
	args := m.Called(ctx, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}
func (m *MockCommentRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockLikeRepo struct {
	mock.Mock
}

func (m *MockLikeRepo) Create(ctx context.Context, like *domain.Like) error {
	return m.Called(ctx, like).Error(0)
}
func (m *MockLikeRepo) Exists(ctx context.Context, blogID, userID string) (bool, error) {
	args := m.Called(ctx, blogID, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockLikeRepo) Delete(ctx context.Context, blogID, userID string) error {
	return m.Called(ctx, blogID, userID).Error(0)
}

// MockMailer stands in for the Resend-backed email service. autoReplyCalled
// is buffered so tests can wait for the detached auto-reply goroutine.
type MockMailer struct {
	mock.Mock
	autoReplyCalled chan email.ContactEmailData
}

func NewMockMailer() *MockMailer {
	return &MockMailer{autoReplyCalled: make(chan email.ContactEmailData, 1)}
}

func (m *MockMailer) SendContactEmail(ctx context.Context, data email.ContactEmailData) (email.SendResult, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(email.SendResult), args.Error(1)
}
func (m *MockMailer) SendContactAutoReply(ctx context.Context, data email.ContactEmailData) error {
	err := m.Called(ctx, data).Error(0)
	m.autoReplyCalled <- data
	return err
}
func (m *MockMailer) IsConfigured() bool {
	return m.Called().Bool(0)
}
