package service

import (
	"context"

	"showcase/internal/models"
)

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteAccountFn func(context.Context, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) DeleteAccount(ctx context.Context, id uint) error {
	return s.deleteAccountFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		deleteAccountFn: func(context.Context, uint) error { return nil },
	}
}

type profileRepoStub struct {
	getByUserIDFn func(context.Context, uint) (*models.Profile, error)
	getByIDFn     func(context.Context, uint) (*models.Profile, error)
	createFn      func(context.Context, *models.Profile) error
	updateFn      func(context.Context, *models.Profile) error
	listFn        func(context.Context) ([]models.Profile, error)
}

func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	return s.getByIDFn(ctx, id)
}
func (s *profileRepoStub) Create(ctx context.Context, profile *models.Profile) error {
	return s.createFn(ctx, profile)
}
func (s *profileRepoStub) Update(ctx context.Context, profile *models.Profile) error {
	return s.updateFn(ctx, profile)
}
func (s *profileRepoStub) List(ctx context.Context) ([]models.Profile, error) {
	return s.listFn(ctx)
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		getByUserIDFn: func(_ context.Context, userID uint) (*models.Profile, error) {
			return &models.Profile{ID: userID + 100, UserID: userID}, nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Profile, error) {
			return &models.Profile{ID: id}, nil
		},
		createFn: func(context.Context, *models.Profile) error { return nil },
		updateFn: func(context.Context, *models.Profile) error { return nil },
		listFn:   func(context.Context) ([]models.Profile, error) { return nil, nil },
	}
}

type followRepoStub struct {
	followFn           func(context.Context, uint, uint) error
	unfollowFn         func(context.Context, uint, uint) error
	existsFn           func(context.Context, uint, uint) (bool, error)
	listFollowingFn    func(context.Context, uint) ([]models.ProfileSummary, error)
	listFollowersFn    func(context.Context, uint) ([]models.ProfileSummary, error)
	followingUserIDsFn func(context.Context, uint) ([]uint, error)
	countFollowingFn   func(context.Context, uint) (int64, error)
	countFollowersFn   func(context.Context, uint) (int64, error)
}

func (s *followRepoStub) Follow(ctx context.Context, followerID, followeeID uint) error {
	return s.followFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	return s.unfollowFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Exists(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.existsFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) ListFollowing(ctx context.Context, profileID uint) ([]models.ProfileSummary, error) {
	return s.listFollowingFn(ctx, profileID)
}
func (s *followRepoStub) ListFollowers(ctx context.Context, profileID uint) ([]models.ProfileSummary, error) {
	return s.listFollowersFn(ctx, profileID)
}
func (s *followRepoStub) FollowingUserIDs(ctx context.Context, profileID uint) ([]uint, error) {
	return s.followingUserIDsFn(ctx, profileID)
}
func (s *followRepoStub) CountFollowing(ctx context.Context, profileID uint) (int64, error) {
	return s.countFollowingFn(ctx, profileID)
}
func (s *followRepoStub) CountFollowers(ctx context.Context, profileID uint) (int64, error) {
	return s.countFollowersFn(ctx, profileID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		followFn:           func(context.Context, uint, uint) error { return nil },
		unfollowFn:         func(context.Context, uint, uint) error { return nil },
		existsFn:           func(context.Context, uint, uint) (bool, error) { return false, nil },
		listFollowingFn:    func(context.Context, uint) ([]models.ProfileSummary, error) { return nil, nil },
		listFollowersFn:    func(context.Context, uint) ([]models.ProfileSummary, error) { return nil, nil },
		followingUserIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
		countFollowingFn:   func(context.Context, uint) (int64, error) { return 0, nil },
		countFollowersFn:   func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, uint) (*models.Post, error)
	getMetaFn       func(context.Context, uint) (*models.Post, error)
	listFn          func(context.Context) ([]*models.Post, error)
	listByAuthorFn  func(context.Context, uint) ([]*models.Post, error)
	listByAuthorsFn func(context.Context, []uint) ([]*models.Post, error)
	deleteFn        func(context.Context, uint, uint) error
	likeFn          func(context.Context, uint, uint) error
	unlikeFn        func(context.Context, uint, uint) error
	listLikersFn    func(context.Context, uint) ([]models.UserSummary, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetMeta(ctx context.Context, id uint) (*models.Post, error) {
	return s.getMetaFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context) ([]*models.Post, error) {
	return s.listFn(ctx)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, userID uint) ([]*models.Post, error) {
	return s.listByAuthorFn(ctx, userID)
}
func (s *postRepoStub) ListByAuthors(ctx context.Context, userIDs []uint) ([]*models.Post, error) {
	return s.listByAuthorsFn(ctx, userIDs)
}
func (s *postRepoStub) Delete(ctx context.Context, id, requesterID uint) error {
	return s.deleteFn(ctx, id, requesterID)
}
func (s *postRepoStub) Like(ctx context.Context, postID, userID uint) error {
	return s.likeFn(ctx, postID, userID)
}
func (s *postRepoStub) Unlike(ctx context.Context, postID, userID uint) error {
	return s.unlikeFn(ctx, postID, userID)
}
func (s *postRepoStub) ListLikers(ctx context.Context, postID uint) ([]models.UserSummary, error) {
	return s.listLikersFn(ctx, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:        func(context.Context, *models.Post) error { return nil },
		getByIDFn:       func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		getMetaFn:       func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		listFn:          func(context.Context) ([]*models.Post, error) { return nil, nil },
		listByAuthorFn:  func(context.Context, uint) ([]*models.Post, error) { return nil, nil },
		listByAuthorsFn: func(context.Context, []uint) ([]*models.Post, error) { return nil, nil },
		deleteFn:        func(context.Context, uint, uint) error { return nil },
		likeFn:          func(context.Context, uint, uint) error { return nil },
		unlikeFn:        func(context.Context, uint, uint) error { return nil },
		listLikersFn:    func(context.Context, uint) ([]models.UserSummary, error) { return nil, nil },
	}
}

type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint) ([]models.Comment, error)
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(context.Context, *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByPostFn: func(context.Context, uint) ([]models.Comment, error) { return nil, nil },
		deleteFn:     func(context.Context, uint) error { return nil },
	}
}
