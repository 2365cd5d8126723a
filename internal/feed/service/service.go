package service

import (
	"context"
	"unicode/utf8"

	"github.com/yongjunp/miniter/internal/common/constants"
	commonerrors "github.com/yongjunp/miniter/internal/common/errors"
	"github.com/yongjunp/miniter/internal/common/logger"
	"github.com/yongjunp/miniter/internal/feed/domain"
	feedrepo "github.com/yongjunp/miniter/internal/feed/repository"
	userdomain "github.com/yongjunp/miniter/internal/user/domain"
)

// UserChecker is the slice of the user directory the feed needs: existence
// checks for follow targets.
type UserChecker interface {
	Exists(ctx context.Context, id userdomain.ID) (bool, error)
}

type FeedService struct {
	posts   feedrepo.PostRepository
	follows feedrepo.FollowRepository
	users   UserChecker
	log     *logger.Logger
}

func NewFeedService(
	posts feedrepo.PostRepository,
	follows feedrepo.FollowRepository,
	users UserChecker,
	log *logger.Logger,
) *FeedService {
	return &FeedService{
		posts:   posts,
		follows: follows,
		users:   users,
		log:     log,
	}
}

// Tweet appends a post after checking the length cap. The limit counts
// characters, not bytes, so multibyte text is not penalized.
func (s *FeedService) Tweet(ctx context.Context, authorID int64, text string) (int64, error) {
	if utf8.RuneCountInString(text) > constants.TweetMaxLength {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": authorID,
			"action":  "tweet_too_long",
		}).Warn("tweet rejected: too long")
		return 0, ErrTweetTooLong
	}

	id, err := s.posts.Append(ctx, authorID, text)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": authorID,
			"action":  "tweet_append_failed",
		}).Errorf("tweet failed: %v", err)
		return 0, commonerrors.ErrDatabaseError.WithCause(err)
	}

	incrementTweetsCreated()
	s.log.WithFields(ctx, logger.Fields{
		"user_id":  authorID,
		"tweet_id": id,
		"action":   "tweet_created",
	}).Info("tweet created")

	return id, nil
}

func (s *FeedService) Follow(ctx context.Context, followerID, followeeID int64) error {
	if err := s.checkUserExists(ctx, followeeID); err != nil {
		return err
	}

	if err := s.follows.Follow(ctx, followerID, followeeID); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id":        followerID,
			"follow_user_id": followeeID,
			"action":         "follow_failed",
		}).Errorf("follow failed: %v", err)
		return commonerrors.ErrDatabaseError.WithCause(err)
	}

	incrementFollows()
	s.log.WithFields(ctx, logger.Fields{
		"user_id":        followerID,
		"follow_user_id": followeeID,
		"action":         "follow_success",
	}).Info("follow success")

	return nil
}

func (s *FeedService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	if err := s.checkUserExists(ctx, followeeID); err != nil {
		return err
	}

	if err := s.follows.Unfollow(ctx, followerID, followeeID); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id":        followerID,
			"follow_user_id": followeeID,
			"action":         "unfollow_failed",
		}).Errorf("unfollow failed: %v", err)
		return commonerrors.ErrDatabaseError.WithCause(err)
	}

	incrementUnfollows()
	s.log.WithFields(ctx, logger.Fields{
		"user_id":        followerID,
		"follow_user_id": followeeID,
		"action":         "unfollow_success",
	}).Info("unfollow success")

	return nil
}

// Timeline merges the user's own posts with posts from followed accounts.
// The author set is deduplicated before the query, so no post appears twice.
func (s *FeedService) Timeline(ctx context.Context, userID int64) ([]domain.TimelineEntry, error) {
	followees, err := s.follows.FolloweesOf(ctx, userID)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": userID,
			"action":  "timeline_followees_failed",
		}).Errorf("timeline failed: %v", err)
		return nil, commonerrors.ErrDatabaseError.WithCause(err)
	}

	authors := make([]int64, 0, len(followees)+1)
	authors = append(authors, userID)
	for _, followee := range followees {
		if followee != userID {
			authors = append(authors, followee)
		}
	}

	posts, err := s.posts.PostsByAuthors(ctx, authors)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": userID,
			"action":  "timeline_posts_failed",
		}).Errorf("timeline failed: %v", err)
		return nil, commonerrors.ErrDatabaseError.WithCause(err)
	}

	entries := make([]domain.TimelineEntry, 0, len(posts))
	for _, p := range posts {
		entries = append(entries, domain.TimelineEntry{
			AuthorID: p.AuthorID,
			Text:     p.Text,
		})
	}

	observeTimeline(len(entries))
	return entries, nil
}

func (s *FeedService) checkUserExists(ctx context.Context, userID int64) error {
	exists, err := s.users.Exists(ctx, userdomain.ID(userID))
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": userID,
			"action":  "user_existence_check_failed",
		}).Errorf("existence check failed: %v", err)
		return commonerrors.ErrDatabaseError.WithCause(err)
	}
	if !exists {
		return ErrUnknownUser
	}
	return nil
}
