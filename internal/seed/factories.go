// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"showcase/internal/models"
	"showcase/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// seedPassword is the shared password for all seeded accounts so developers
// can log in as any of them.
const seedPassword = "Password123"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db}
}

// CreateUsers creates n accounts, each with a developer profile.
func (f *Factory) CreateUsers(n int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		name := gofakeit.Name()
		email := fmt.Sprintf("%s%d@%s", strings.ToLower(gofakeit.Username()), i, gofakeit.DomainName())
		user := &models.User{
			Name:     name,
			Email:    email,
			Password: string(hashed),
			Avatar:   service.GravatarURL(email),
		}
		if err := f.db.Create(user).Error; err != nil {
			return nil, err
		}

		if err := f.db.Create(f.buildProfile(user)).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (f *Factory) buildProfile(user *models.User) *models.Profile {
	skills := pickSome(skillPool, 2+rand.Intn(4))
	profile := &models.Profile{
		UserID:   user.ID,
		Bio:      gofakeit.Sentence(12),
		Website:  gofakeit.URL(),
		Location: fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.Country()),
		Skills:   skills,
		Social:   map[string]string{},
	}
	if rand.Intn(2) == 0 {
		profile.GithubUsername = gofakeit.Username()
	}
	if rand.Intn(2) == 0 {
		profile.Social["twitter"] = "https://twitter.com/" + gofakeit.Username()
	}
	if rand.Intn(3) == 0 {
		profile.Social["linkedin"] = "https://linkedin.com/in/" + gofakeit.Username()
	}
	return profile
}

// CreateFollowMesh makes each profile follow a handful of others, writing
// both directions of every edge.
func (f *Factory) CreateFollowMesh(users []*models.User) error {
	var profiles []models.Profile
	if err := f.db.Find(&profiles).Error; err != nil {
		return err
	}
	if len(profiles) < 2 {
		return nil
	}

	for i := range profiles {
		n := 1 + rand.Intn(4)
		for j := 0; j < n; j++ {
			target := profiles[rand.Intn(len(profiles))]
			if target.ID == profiles[i].ID {
				continue
			}
			err := f.db.Transaction(func(tx *gorm.DB) error {
				var count int64
				if err := tx.Model(&models.FollowingEdge{}).
					Where("profile_id = ? AND following_id = ?", profiles[i].ID, target.ID).
					Count(&count).Error; err != nil {
					return err
				}
				if count > 0 {
					return nil
				}
				if err := tx.Create(&models.FollowingEdge{ProfileID: profiles[i].ID, FollowingID: target.ID}).Error; err != nil {
					return err
				}
				return tx.Create(&models.FollowerEdge{ProfileID: target.ID, FollowerID: profiles[i].ID}).Error
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// CreatePosts creates n project posts spread across the users with a
// realistic created_at spread.
func (f *Factory) CreatePosts(users []*models.User, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[rand.Intn(len(users))]
		post := f.BuildPost(author)
		if err := f.db.Create(post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// BuildPost constructs a post struct but does not persist it.
func (f *Factory) BuildPost(author *models.User, overrides ...func(*models.Post)) *models.Post {
	post := &models.Post{
		Title:       gofakeit.AppName(),
		Description: gofakeit.Paragraph(1, 3, 8, "\n"),
		TechTags:    pickSome(tagPool, 1+rand.Intn(4)),
		WebsiteURL:  gofakeit.URL(),
		UserID:      author.ID,
	}

	imgCount := rand.Intn(4)
	for j := 0; j < imgCount; j++ {
		post.Images = append(post.Images, fmt.Sprintf("https://picsum.photos/seed/%s/1200/800", gofakeit.UUID()))
	}
	if rand.Intn(2) == 0 {
		post.RepoURL = fmt.Sprintf("https://github.com/%s/%s", gofakeit.Username(), gofakeit.Word())
	}

	daysBack := rand.Intn(90)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(rand.Intn(24))*time.Hour)

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreateComment persists a comment on the post with the author's attribution
// captured at write time.
func (f *Factory) CreateComment(post *models.Post, author *models.User) error {
	comment := &models.Comment{
		PostID:       post.ID,
		UserID:       author.ID,
		AuthorName:   author.Name,
		AuthorAvatar: author.Avatar,
		Text:         gofakeit.Sentence(8 + rand.Intn(10)),
	}
	return f.db.Create(comment).Error
}

// CreateLike persists a like edge; duplicates are skipped silently.
func (f *Factory) CreateLike(post *models.Post, user *models.User) error {
	var count int64
	if err := f.db.Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", post.ID, user.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return f.db.Create(&models.Like{PostID: post.ID, UserID: user.ID}).Error
}

func pickSome(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	idx := rand.Perm(len(pool))[:n]
	out := make([]string, 0, n)
	for _, i := range idx {
		out = append(out, pool[i])
	}
	return out
}
