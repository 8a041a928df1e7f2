//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"
)

// fakeUser is one account known to the fake search endpoint
type fakeUser struct {
	ID    int64
	Login string
	Type  string
}

// FakeGitHub serves /search/users from a fixed list of accounts
type FakeGitHub struct {
	srv *httptest.Server

	mu          sync.Mutex
	users       []fakeUser
	rateLimited bool
	queries     []string
}

// StartFakeGitHub starts the fake endpoint and points the app at it
func (tf *TUITestFramework) StartFakeGitHub(users ...fakeUser) *FakeGitHub {
	f := &FakeGitHub{users: users}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	tf.t.Cleanup(f.srv.Close)
	tf.baseURL = f.srv.URL + "/search/users"
	return f
}

// SetRateLimited makes every following request answer 403
func (f *FakeGitHub) SetRateLimited(limited bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rateLimited = limited
}

// Queries returns the terms requested so far
func (f *FakeGitHub) Queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

func (f *FakeGitHub) handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/search/users" {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query().Get("q")

	f.mu.Lock()
	f.queries = append(f.queries, q)
	limited := f.rateLimited
	users := f.users
	f.mu.Unlock()

	if limited {
		reset := time.Now().Add(50 * time.Second).Unix()
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset, 10))
		w.WriteHeader(http.StatusForbidden)
		return
	}

	type item struct {
		ID        int64  `json:"id"`
		Login     string `json:"login"`
		AvatarURL string `json:"avatar_url"`
		HTMLURL   string `json:"html_url"`
		Type      string `json:"type"`
	}
	items := []item{}
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Login), strings.ToLower(q)) {
			items = append(items, item{
				ID:        u.ID,
				Login:     u.Login,
				AvatarURL: "https://avatars.example/" + u.Login,
				HTMLURL:   "https://github.com/" + u.Login,
				Type:      u.Type,
			})
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"total_count":        len(items),
		"incomplete_results": false,
		"items":              items,
	})
}

func octoUsers() []fakeUser {
	return []fakeUser{
		{ID: 583231, Login: "octocat", Type: "User"},
		{ID: 9919, Login: "octo-org", Type: "Organization"},
		{ID: 1024, Login: "octodog", Type: "User"},
		{ID: 77, Login: "hubot", Type: "Bot"},
	}
}
