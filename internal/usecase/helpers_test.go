package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"shopstream/internal/domain/model"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// =====================
// テスト用の小物
// =====================

type notification struct {
	kind        NotificationKind
	title       string
	description string
}

type stubNotifier struct {
	mu     sync.Mutex
	events []notification
}

func (n *stubNotifier) Notify(kind NotificationKind, title string, description string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, notification{kind: kind, title: title, description: description})
}

func (n *stubNotifier) all() []notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification(nil), n.events...)
}

type stubNavigator struct {
	mu    sync.Mutex
	paths []string
}

func (n *stubNavigator) NavigateTo(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
}

func (n *stubNavigator) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.paths) == 0 {
		return ""
	}
	return n.paths[len(n.paths)-1]
}

type stubValidator struct{}

func (stubValidator) ValidateLogin(ctx context.Context, email string, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return ErrValidation
	}
	return nil
}

func (stubValidator) ValidateInterests(ctx context.Context, interests string) error {
	if len(strings.TrimSpace(interests)) < 10 {
		return ErrValidation
	}
	return nil
}

// =====================
// Mock: BlobStore
// =====================

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) Set(ctx context.Context, key string, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockBlobStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// =====================
// Mock: Recommender
// =====================

type MockRecommender struct {
	mock.Mock
}

func (m *MockRecommender) Recommend(ctx context.Context, interests string) (string, error) {
	args := m.Called(ctx, interests)
	return args.String(0), args.Error(1)
}

func testProduct(id string, name string, price float64) model.Product {
	return model.Product{
		ID:          id,
		Name:        name,
		Description: "test product",
		Price:       price,
		ImageURL:    "https://placehold.co/600x400.png",
		Category:    "Test",
	}
}
