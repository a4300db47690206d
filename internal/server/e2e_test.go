package server

import (
	"net/http"
	"testing"
)

// TestShowAndTellFlow drives the whole API surface the way a client would:
// two accounts sign up, build profiles, follow each other, post, like,
// comment, and read the personalized feed.
func TestShowAndTellFlow(t *testing.T) {
	app, _ := newTestApp(t)

	aliceToken, _ := signupUser(t, app, "Alice", "alice@example.com")
	bobToken, _ := signupUser(t, app, "Bob", "bob@example.com")

	// Profiles. Skills arrive comma separated and come back as a list.
	var aliceProfile struct {
		ID     uint     `json:"id"`
		Skills []string `json:"skills"`
	}
	resp := doJSON(t, app, http.MethodPost, "/api/profiles", aliceToken, map[string]any{
		"bio":             "Building in public",
		"skills":          "Go, React",
		"github_username": "alice",
	}, &aliceProfile)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create alice profile: got %d", resp.StatusCode)
	}
	if len(aliceProfile.Skills) != 2 || aliceProfile.Skills[0] != "Go" {
		t.Fatalf("skills not split: %v", aliceProfile.Skills)
	}

	var bobProfile struct {
		ID uint `json:"id"`
	}
	resp = doJSON(t, app, http.MethodPost, "/api/profiles", bobToken, map[string]any{
		"bio":    "Curious builder",
		"skills": "TypeScript",
	}, &bobProfile)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create bob profile: got %d", resp.StatusCode)
	}

	// Alice posts a project; tags split like skills do.
	var post struct {
		ID       uint     `json:"id"`
		TechTags []string `json:"tech_tags"`
	}
	resp = doJSON(t, app, http.MethodPost, "/api/posts", aliceToken, map[string]any{
		"title":       "Tiny Kanban",
		"description": "A weekend project",
		"tech_tags":   "react, node",
		"website_url": "https://kanban.example.com",
	}, &post)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create post: got %d", resp.StatusCode)
	}
	if len(post.TechTags) != 2 || post.TechTags[0] != "react" || post.TechTags[1] != "node" {
		t.Fatalf("tags not split: %v", post.TechTags)
	}

	// Before following anyone, Bob's feed is empty.
	var feed []map[string]any
	doJSON(t, app, http.MethodGet, "/api/feed", bobToken, nil, &feed)
	if len(feed) != 0 {
		t.Fatalf("expected empty feed, got %d posts", len(feed))
	}

	// Bob follows Alice; the response is his updated following list.
	var following []struct {
		ProfileID uint   `json:"profile_id"`
		Name      string `json:"name"`
	}
	resp = doJSON(t, app, http.MethodPost, followPath(aliceProfile.ID), bobToken, nil, &following)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("follow: got %d", resp.StatusCode)
	}
	if len(following) != 1 || following[0].Name != "Alice" {
		t.Fatalf("unexpected following list: %+v", following)
	}

	// Following again is a conflict.
	resp = doJSON(t, app, http.MethodPost, followPath(aliceProfile.ID), bobToken, nil, nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate follow: expected 409, got %d", resp.StatusCode)
	}

	// Following yourself is rejected.
	resp = doJSON(t, app, http.MethodPost, followPath(aliceProfile.ID), aliceToken, nil, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("self follow: expected 400, got %d", resp.StatusCode)
	}

	// Now Alice's post shows up in Bob's feed.
	doJSON(t, app, http.MethodGet, "/api/feed", bobToken, nil, &feed)
	if len(feed) != 1 {
		t.Fatalf("expected 1 feed post, got %d", len(feed))
	}

	// Bob likes the post; likers contains Bob exactly once.
	var likers []struct {
		Name string `json:"name"`
	}
	resp = doJSON(t, app, http.MethodPost, likePath(post.ID), bobToken, nil, &likers)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("like: got %d", resp.StatusCode)
	}
	if len(likers) != 1 || likers[0].Name != "Bob" {
		t.Fatalf("unexpected likers: %+v", likers)
	}

	resp = doJSON(t, app, http.MethodPost, likePath(post.ID), bobToken, nil, nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("double like: expected 409, got %d", resp.StatusCode)
	}

	// Unlike empties the liker list; a second unlike conflicts.
	doJSON(t, app, http.MethodDelete, likePath(post.ID), bobToken, nil, &likers)
	if len(likers) != 0 {
		t.Fatalf("expected no likers after unlike, got %+v", likers)
	}
	resp = doJSON(t, app, http.MethodDelete, likePath(post.ID), bobToken, nil, nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("double unlike: expected 409, got %d", resp.StatusCode)
	}

	// Comments carry the author snapshot and come back as the full list.
	var comments []struct {
		ID         uint   `json:"id"`
		AuthorName string `json:"name"`
		Text       string `json:"text"`
	}
	resp = doJSON(t, app, http.MethodPost, commentsPath(post.ID), bobToken, map[string]any{
		"text": "Love the drag and drop",
	}, &comments)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("comment: got %d", resp.StatusCode)
	}
	if len(comments) != 1 || comments[0].AuthorName != "Bob" {
		t.Fatalf("unexpected comments: %+v", comments)
	}

	// Alice cannot delete Bob's comment.
	resp = doJSON(t, app, http.MethodDelete, commentPath(post.ID, comments[0].ID), aliceToken, nil, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("foreign comment delete: expected 401, got %d", resp.StatusCode)
	}

	// Bob deletes it and gets the remaining (empty) list back.
	doJSON(t, app, http.MethodDelete, commentPath(post.ID, comments[0].ID), bobToken, nil, &comments)
	if len(comments) != 0 {
		t.Fatalf("expected no comments after delete, got %+v", comments)
	}

	// Unfollow empties Bob's feed again.
	resp = doJSON(t, app, http.MethodDelete, followPath(aliceProfile.ID), bobToken, nil, &following)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unfollow: got %d", resp.StatusCode)
	}
	doJSON(t, app, http.MethodGet, "/api/feed", bobToken, nil, &feed)
	if len(feed) != 0 {
		t.Fatalf("expected empty feed after unfollow, got %d", len(feed))
	}

	// A second unfollow has no edge left to remove.
	resp = doJSON(t, app, http.MethodDelete, followPath(aliceProfile.ID), bobToken, nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("double unfollow: expected 404, got %d", resp.StatusCode)
	}
}

func TestAuthRequiredOnProtectedRoutes(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/feed", "", nil, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/posts", "", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected public post browse to work, got %d", resp.StatusCode)
	}
}

func TestDeleteAccountKeepsContributions(t *testing.T) {
	app, srv := newTestApp(t)

	aliceToken, _ := signupUser(t, app, "Alice", "alice@example.com")
	bobToken, bobID := signupUser(t, app, "Bob", "bob@example.com")

	doJSON(t, app, http.MethodPost, "/api/profiles", bobToken, map[string]any{
		"bio": "soon gone", "skills": "Go",
	}, nil)

	var post struct {
		ID uint `json:"id"`
	}
	doJSON(t, app, http.MethodPost, "/api/posts", aliceToken, map[string]any{
		"title": "Keeper", "tech_tags": "go", "website_url": "https://example.com",
	}, &post)
	doJSON(t, app, http.MethodPost, commentsPath(post.ID), bobToken, map[string]any{
		"text": "still here after I leave",
	}, nil)

	resp := doJSON(t, app, http.MethodDelete, "/api/users/me", bobToken, nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete account: got %d", resp.StatusCode)
	}

	// The token now points at a dead account.
	resp = doJSON(t, app, http.MethodGet, "/api/users/me", bobToken, nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for deleted account, got %d", resp.StatusCode)
	}

	// Bob's comment survives with its attribution snapshot.
	var comments []struct {
		UserID     uint   `json:"user_id"`
		AuthorName string `json:"name"`
	}
	doJSON(t, app, http.MethodGet, commentsPath(post.ID), "", nil, &comments)
	if len(comments) != 1 {
		t.Fatalf("expected surviving comment, got %d", len(comments))
	}
	if comments[0].UserID != bobID || comments[0].AuthorName != "Bob" {
		t.Fatalf("comment attribution lost: %+v", comments[0])
	}

	var profiles int64
	srv.db.Table("profiles").Where("user_id = ?", bobID).Count(&profiles)
	if profiles != 0 {
		t.Fatalf("expected bob's profile removed, found %d", profiles)
	}
}

func TestRenameAccountKeepsCommentSnapshots(t *testing.T) {
	app, _ := newTestApp(t)

	token, _ := signupUser(t, app, "Carol", "carol@example.com")

	var post struct {
		ID uint `json:"id"`
	}
	doJSON(t, app, http.MethodPost, "/api/posts", token, map[string]any{
		"title": "Renamer", "tech_tags": "go", "website_url": "https://example.com",
	}, &post)
	doJSON(t, app, http.MethodPost, commentsPath(post.ID), token, map[string]any{
		"text": "signed with my old name",
	}, nil)

	var user struct {
		Name string `json:"name"`
	}
	resp := doJSON(t, app, http.MethodPut, "/api/users/me", token, map[string]any{
		"name": "Caroline",
	}, &user)
	if resp.StatusCode != http.StatusOK || user.Name != "Caroline" {
		t.Fatalf("rename: got %d, name %q", resp.StatusCode, user.Name)
	}

	doJSON(t, app, http.MethodGet, "/api/users/me", token, nil, &user)
	if user.Name != "Caroline" {
		t.Fatalf("rename not persisted, got %q", user.Name)
	}

	// The comment keeps the name it was written under.
	var comments []struct {
		AuthorName string `json:"name"`
	}
	doJSON(t, app, http.MethodGet, commentsPath(post.ID), "", nil, &comments)
	if len(comments) != 1 || comments[0].AuthorName != "Carol" {
		t.Fatalf("expected snapshotted author name, got %+v", comments)
	}

	resp = doJSON(t, app, http.MethodPut, "/api/users/me", token, map[string]any{"name": ""}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty name: expected 400, got %d", resp.StatusCode)
	}
}
