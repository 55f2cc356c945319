package services

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockVCSClient struct {
	mock.Mock
}

func (m *MockVCSClient) GetPR(ctx context.Context, prNumber int) (models.PRContext, error) {
	args := m.Called(ctx, prNumber)
	return args.Get(0).(models.PRContext), args.Error(1)
}

func (m *MockVCSClient) ListChangedFiles(ctx context.Context, prNumber int) ([]models.ChangedFile, error) {
	args := m.Called(ctx, prNumber)
	return args.Get(0).([]models.ChangedFile), args.Error(1)
}

func (m *MockVCSClient) ListReviewComments(ctx context.Context, prNumber int) (map[string]string, error) {
	args := m.Called(ctx, prNumber)
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockVCSClient) CreateReview(ctx context.Context, prNumber int, commitSHA, body string, comments []models.ReviewComment) error {
	args := m.Called(ctx, prNumber, commitSHA, body, comments)
	return args.Error(0)
}

type MockReviewGenerator struct {
	mock.Mock
}

func (m *MockReviewGenerator) GenerateFindings(ctx context.Context, content string) ([]models.ReviewFinding, error) {
	args := m.Called(ctx, content)
	return args.Get(0).([]models.ReviewFinding), args.Error(1)
}

func (m *MockReviewGenerator) GetModelName() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockReviewGenerator) GetProviderName() string {
	args := m.Called()
	return args.String(0)
}
