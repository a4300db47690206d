package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix        = "user:%d"
	PostKeyPrefix        = "post:%d"
	GithubReposKeyPrefix = "github:%s:repos"
)

const (
	UserTTL = 5 * time.Minute
	PostTTL = 30 * time.Minute
	// GithubReposTTL bounds how long a cached repository listing is served
	// before the GitHub API is consulted again.
	GithubReposTTL = 3 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func GithubReposKey(username string) string {
	return fmt.Sprintf(GithubReposKeyPrefix, username)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}
