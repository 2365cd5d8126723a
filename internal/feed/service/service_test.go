package service_test

import (
	"context"
	"sort"
	"strings"
	"testing"

	commonerrors "github.com/yongjunp/miniter/internal/common/errors"
	"github.com/yongjunp/miniter/internal/feed/domain"
	userdomain "github.com/yongjunp/miniter/internal/user/domain"
)

func TestFeedService_Tweet_AtLimit(t *testing.T) {
	svc, posts, _, _ := setupFeedService(t)

	var gotText string
	posts.appendFunc = func(ctx context.Context, authorID int64, text string) (int64, error) {
		gotText = text
		return 9, nil
	}

	id, err := svc.Tweet(context.Background(), 1, strings.Repeat("a", 300))

	if err != nil {
		t.Fatalf("expected 300-char tweet to succeed, got %v", err)
	}
	if id != 9 {
		t.Errorf("expected tweet id 9, got %d", id)
	}
	if len(gotText) != 300 {
		t.Errorf("expected persisted text of 300 chars, got %d", len(gotText))
	}
}

func TestFeedService_Tweet_OverLimit(t *testing.T) {
	svc, posts, _, _ := setupFeedService(t)

	appended := false
	posts.appendFunc = func(ctx context.Context, authorID int64, text string) (int64, error) {
		appended = true
		return 1, nil
	}

	_, err := svc.Tweet(context.Background(), 1, strings.Repeat("a", 301))

	if err == nil {
		t.Fatal("expected error for 301-char tweet")
	}
	if domainErr, ok := commonerrors.AsDomainError(err); !ok || domainErr.Code() != "TWEET_TOO_LONG" {
		t.Errorf("expected TWEET_TOO_LONG error, got %v", err)
	}
	if appended {
		t.Error("over-limit tweet must not reach the store")
	}
}

// The limit counts characters, not bytes.
func TestFeedService_Tweet_MultibyteAtLimit(t *testing.T) {
	svc, _, _, _ := setupFeedService(t)

	_, err := svc.Tweet(context.Background(), 1, strings.Repeat("한", 300))

	if err != nil {
		t.Fatalf("expected 300-rune multibyte tweet to succeed, got %v", err)
	}
}

func TestFeedService_Follow_Success(t *testing.T) {
	svc, _, follows, _ := setupFeedService(t)

	var gotFollower, gotFollowee int64
	follows.followFunc = func(ctx context.Context, followerID, followeeID int64) error {
		gotFollower = followerID
		gotFollowee = followeeID
		return nil
	}

	if err := svc.Follow(context.Background(), 1, 2); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if gotFollower != 1 || gotFollowee != 2 {
		t.Errorf("expected edge (1,2), got (%d,%d)", gotFollower, gotFollowee)
	}
}

func TestFeedService_Follow_UnknownUser(t *testing.T) {
	svc, _, follows, users := setupFeedService(t)

	users.existsFunc = func(ctx context.Context, id userdomain.ID) (bool, error) {
		return false, nil
	}

	inserted := false
	follows.followFunc = func(ctx context.Context, followerID, followeeID int64) error {
		inserted = true
		return nil
	}

	err := svc.Follow(context.Background(), 1, 99)

	if err == nil {
		t.Fatal("expected error for unknown followee")
	}
	if domainErr, ok := commonerrors.AsDomainError(err); !ok || domainErr.Code() != "UNKNOWN_USER" {
		t.Errorf("expected UNKNOWN_USER error, got %v", err)
	}
	if inserted {
		t.Error("edge must not be inserted for unknown followee")
	}
}

func TestFeedService_Unfollow_UnknownUser(t *testing.T) {
	svc, _, _, users := setupFeedService(t)

	users.existsFunc = func(ctx context.Context, id userdomain.ID) (bool, error) {
		return false, nil
	}

	err := svc.Unfollow(context.Background(), 1, 99)

	if err == nil {
		t.Fatal("expected error for unknown followee")
	}
	if domainErr, ok := commonerrors.AsDomainError(err); !ok || domainErr.Code() != "UNKNOWN_USER" {
		t.Errorf("expected UNKNOWN_USER error, got %v", err)
	}
}

func TestFeedService_Timeline_Empty(t *testing.T) {
	svc, _, _, _ := setupFeedService(t)

	entries, err := svc.Timeline(context.Background(), 1)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty timeline, got %d entries", len(entries))
	}
}

func TestFeedService_Timeline_IncludesSelfAndFollowees(t *testing.T) {
	svc, posts, follows, _ := setupFeedService(t)

	follows.followeesOfFunc = func(ctx context.Context, userID int64) ([]int64, error) {
		return []int64{2, 3}, nil
	}

	var gotAuthors []int64
	posts.postsByAuthorsFunc = func(ctx context.Context, authorIDs []int64) ([]domain.Post, error) {
		gotAuthors = authorIDs
		return []domain.Post{
			{ID: 1, AuthorID: 1, Text: "mine"},
			{ID: 2, AuthorID: 2, Text: "hello"},
		}, nil
	}

	entries, err := svc.Timeline(context.Background(), 1)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	sort.Slice(gotAuthors, func(i, j int) bool { return gotAuthors[i] < gotAuthors[j] })
	want := []int64{1, 2, 3}
	if len(gotAuthors) != len(want) {
		t.Fatalf("expected authors %v, got %v", want, gotAuthors)
	}
	for i := range want {
		if gotAuthors[i] != want[i] {
			t.Fatalf("expected authors %v, got %v", want, gotAuthors)
		}
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1].AuthorID != 2 || entries[1].Text != "hello" {
		t.Errorf("expected entry {2 hello}, got %+v", entries[1])
	}
}

// A stored self-follow edge must not duplicate the user in the author set.
func TestFeedService_Timeline_SelfFollowDeduplicated(t *testing.T) {
	svc, posts, follows, _ := setupFeedService(t)

	follows.followeesOfFunc = func(ctx context.Context, userID int64) ([]int64, error) {
		return []int64{1, 2}, nil
	}

	var gotAuthors []int64
	posts.postsByAuthorsFunc = func(ctx context.Context, authorIDs []int64) ([]domain.Post, error) {
		gotAuthors = authorIDs
		return nil, nil
	}

	if _, err := svc.Timeline(context.Background(), 1); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	seen := map[int64]int{}
	for _, id := range gotAuthors {
		seen[id]++
	}
	if seen[1] != 1 {
		t.Errorf("expected user 1 exactly once in author set, got %d times", seen[1])
	}
	if seen[2] != 1 {
		t.Errorf("expected user 2 exactly once in author set, got %d times", seen[2])
	}
}
