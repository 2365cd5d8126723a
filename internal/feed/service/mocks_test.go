package service_test

import (
	"context"
	"testing"

	"github.com/yongjunp/miniter/internal/common/logger"
	"github.com/yongjunp/miniter/internal/feed/domain"
	"github.com/yongjunp/miniter/internal/feed/service"
	userdomain "github.com/yongjunp/miniter/internal/user/domain"
)

type mockPostRepo struct {
	appendFunc         func(ctx context.Context, authorID int64, text string) (int64, error)
	postsByAuthorsFunc func(ctx context.Context, authorIDs []int64) ([]domain.Post, error)
}

func (m *mockPostRepo) Append(ctx context.Context, authorID int64, text string) (int64, error) {
	if m.appendFunc != nil {
		return m.appendFunc(ctx, authorID, text)
	}
	return 1, nil
}

func (m *mockPostRepo) PostsByAuthors(ctx context.Context, authorIDs []int64) ([]domain.Post, error) {
	if m.postsByAuthorsFunc != nil {
		return m.postsByAuthorsFunc(ctx, authorIDs)
	}
	return nil, nil
}

type mockFollowRepo struct {
	followFunc      func(ctx context.Context, followerID, followeeID int64) error
	unfollowFunc    func(ctx context.Context, followerID, followeeID int64) error
	followeesOfFunc func(ctx context.Context, userID int64) ([]int64, error)
}

func (m *mockFollowRepo) Follow(ctx context.Context, followerID, followeeID int64) error {
	if m.followFunc != nil {
		return m.followFunc(ctx, followerID, followeeID)
	}
	return nil
}

func (m *mockFollowRepo) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	if m.unfollowFunc != nil {
		return m.unfollowFunc(ctx, followerID, followeeID)
	}
	return nil
}

func (m *mockFollowRepo) FolloweesOf(ctx context.Context, userID int64) ([]int64, error) {
	if m.followeesOfFunc != nil {
		return m.followeesOfFunc(ctx, userID)
	}
	return nil, nil
}

type mockUserChecker struct {
	existsFunc func(ctx context.Context, id userdomain.ID) (bool, error)
}

func (m *mockUserChecker) Exists(ctx context.Context, id userdomain.ID) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, id)
	}
	return true, nil
}

func setupFeedService(t *testing.T) (*service.FeedService, *mockPostRepo, *mockFollowRepo, *mockUserChecker) {
	t.Helper()

	posts := &mockPostRepo{}
	follows := &mockFollowRepo{}
	users := &mockUserChecker{}
	log, err := logger.New("", "test", "error")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	return service.NewFeedService(posts, follows, users, log), posts, follows, users
}
