// Package bptest is a fake BuddyPress backend for tests. It serves
// canned fixtures over a real HTTP listener, counts the requests it
// sees, and can be told to reject tokens or fail the next request
// with a WordPress-style error payload.
package bptest

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-json-experiment/json"

	"github.com/nomavan/nomavan/internal/to"
)

func decodeBody(r *http.Request, v any) error {
	return json.UnmarshalFull(r.Body, v)
}

type Server struct {
	*httptest.Server

	// Token, when set, is the only bearer token the server accepts,
	// and the token the login endpoint issues.
	Token string
	// Username and Password are the credentials the login endpoint
	// accepts. Empty means any credentials pass.
	Username string
	Password string
	// Me is the record served for the logged-in member.
	Me map[string]any

	mu         sync.Mutex
	requests   map[string]int
	activities []map[string]any
	groups     []map[string]any
	members    []map[string]any
	nextID     int

	failStatus  int
	failCode    string
	failMessage string
}

func New(t *testing.T) *Server {
	s := &Server{
		requests: make(map[string]int),
		nextID:   1000,
	}

	r := chi.NewRouter()
	r.Route("/wp-json", func(r chi.Router) {
		r.Route("/buddypress/v1", func(r chi.Router) {
			r.Get("/activity", s.listActivities)
			r.Get("/activity/{id}", s.getActivity)
			r.Post("/activity/{id}/favorite", s.favoriteActivity)
			r.Get("/groups", s.listGroups)
			r.Post("/groups", s.createGroup)
			r.Get("/groups/{id}", s.getGroup)
			r.Post("/groups/{id}/members", s.joinGroup)
			r.Delete("/groups/{id}/members/{userID}", s.leaveGroup)
			r.Post("/groups/membership-requests", s.requestMembership)
			r.Get("/members", s.listMembers)
			r.Get("/members/me", s.me)
		})
		r.Post("/jwt-auth/v1/token", s.login)
		r.Post("/wp/v2/{resource}", s.createResource)
	})

	s.Server = httptest.NewServer(s.intercept(r))
	t.Cleanup(s.Close)
	return s
}

// Base returns the WordPress REST root, suitable for buddypress.New.
func (s *Server) Base() string {
	return s.URL + "/wp-json"
}

// AddActivity appends a fixture activity, assigning an id if absent.
func (s *Server) AddActivity(a map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := a["id"]; !ok {
		a["id"] = s.nextID
		s.nextID++
	}
	s.activities = append(s.activities, a)
}

// AddGroup appends a fixture meetup.
func (s *Server) AddGroup(g map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := g["id"]; !ok {
		g["id"] = s.nextID
		s.nextID++
	}
	s.groups = append(s.groups, g)
}

// AddMember appends a fixture directory entry.
func (s *Server) AddMember(m map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = append(s.members, m)
}

// Count returns how many requests hit the given method and path.
func (s *Server) Count(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[method+" "+path]
}

// FailNext makes the next request fail with the given WordPress error.
func (s *Server) FailNext(status int, code, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
	s.failCode = code
	s.failMessage = message
}

func (s *Server) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests[r.Method+" "+r.URL.Path]++
		if s.failStatus != 0 {
			status, code, message := s.failStatus, s.failCode, s.failMessage
			s.failStatus = 0
			s.mu.Unlock()
			wpError(w, status, code, message)
			return
		}
		token := s.Token
		s.mu.Unlock()

		// the login endpoint is the one route that needs no token
		if token != "" && r.URL.Path != "/wp-json/jwt-auth/v1/token" &&
			r.Header.Get("Authorization") != "Bearer "+token {
			wpError(w, http.StatusForbidden, "rest_forbidden", "Sorry, you are not allowed to do that.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func wpError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	to.JSON(w, map[string]any{
		"code":    code,
		"message": message,
		"data":    map[string]any{"status": status},
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &creds); err != nil {
		wpError(w, http.StatusBadRequest, "rest_invalid_json", err.Error())
		return
	}
	s.mu.Lock()
	username, password, token, me := s.Username, s.Password, s.Token, s.Me
	s.mu.Unlock()
	if username != "" && (creds.Username != username || creds.Password != password) {
		wpError(w, http.StatusForbidden, "jwt_auth_failed", "Invalid credentials.")
		return
	}
	result := map[string]any{
		"token":             token,
		"user_display_name": creds.Username,
	}
	if id, ok := me["id"]; ok {
		result["user_id"] = id
	}
	to.JSON(w, result)
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	me := s.Me
	s.mu.Unlock()
	if me == nil {
		me = map[string]any{"id": 1, "name": "someone"}
	}
	to.JSON(w, me)
}

func (s *Server) listActivities(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	list := append([]map[string]any(nil), s.activities...)
	s.mu.Unlock()
	to.JSON(w, list)
}

func (s *Server) getActivity(w http.ResponseWriter, r *http.Request) {
	a := s.findActivity(chi.URLParam(r, "id"))
	if a == nil {
		wpError(w, http.StatusNotFound, "rest_not_found", "Activity not found.")
		return
	}
	to.JSON(w, a)
}

func (s *Server) favoriteActivity(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	for _, a := range s.activities {
		if a["id"] == id {
			favorited, _ := a["favorited"].(bool)
			count, _ := a["favorited_count"].(int)
			if favorited {
				count--
			} else {
				count++
			}
			a["favorited"] = !favorited
			a["favorited_count"] = count
			to.JSON(w, a)
			return
		}
	}
	wpError(w, http.StatusNotFound, "rest_not_found", "Activity not found.")
}

func (s *Server) findActivity(idParam string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, _ := strconv.Atoi(idParam)
	for _, a := range s.activities {
		if a["id"] == id {
			return a
		}
	}
	return nil
}

func (s *Server) listGroups(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	list := append([]map[string]any(nil), s.groups...)
	s.mu.Unlock()
	to.JSON(w, list)
}

func (s *Server) getGroup(w http.ResponseWriter, r *http.Request) {
	g := s.findGroup(chi.URLParam(r, "id"))
	if g == nil {
		wpError(w, http.StatusNotFound, "rest_not_found", "Group not found.")
		return
	}
	to.JSON(w, g)
}

func (s *Server) findGroup(idParam string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, _ := strconv.Atoi(idParam)
	for _, g := range s.groups {
		if g["id"] == id {
			return g
		}
	}
	return nil
}

func (s *Server) createGroup(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := decodeBody(r, &body); err != nil {
		wpError(w, http.StatusBadRequest, "rest_invalid_json", err.Error())
		return
	}
	s.mu.Lock()
	g := map[string]any{
		"id":          s.nextID,
		"name":        body["name"],
		"description": body["description"],
		"start_at":    body["start_at"],
		"end_at":      body["end_at"],
		"member_detail": map[string]any{
			"count":     1,
			"is_member": true,
		},
	}
	s.nextID++
	s.groups = append(s.groups, g)
	s.mu.Unlock()
	w.WriteHeader(http.StatusCreated)
	to.JSON(w, g)
}

func (s *Server) joinGroup(w http.ResponseWriter, r *http.Request) {
	g := s.findGroup(chi.URLParam(r, "id"))
	if g == nil {
		wpError(w, http.StatusNotFound, "rest_not_found", "Group not found.")
		return
	}
	s.mu.Lock()
	detail, _ := g["member_detail"].(map[string]any)
	if detail == nil {
		detail = map[string]any{"count": 0}
		g["member_detail"] = detail
	}
	count, _ := detail["count"].(int)
	detail["count"] = count + 1
	detail["is_member"] = true
	s.mu.Unlock()
	to.JSON(w, g)
}

func (s *Server) leaveGroup(w http.ResponseWriter, r *http.Request) {
	g := s.findGroup(chi.URLParam(r, "id"))
	if g == nil {
		wpError(w, http.StatusNotFound, "rest_not_found", "Group not found.")
		return
	}
	s.mu.Lock()
	if detail, ok := g["member_detail"].(map[string]any); ok {
		count, _ := detail["count"].(int)
		detail["count"] = count - 1
		detail["is_member"] = false
	}
	s.mu.Unlock()
	to.JSON(w, map[string]any{"deleted": true})
}

func (s *Server) requestMembership(w http.ResponseWriter, r *http.Request) {
	to.JSON(w, map[string]any{"pending": true})
}

func (s *Server) listMembers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	list := append([]map[string]any(nil), s.members...)
	s.mu.Unlock()
	to.JSON(w, list)
}

func (s *Server) createResource(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := decodeBody(r, &body); err != nil {
		wpError(w, http.StatusBadRequest, "rest_invalid_json", err.Error())
		return
	}
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.mu.Unlock()
	w.WriteHeader(http.StatusCreated)
	to.JSON(w, map[string]any{
		"id":   id,
		"link": s.URL + "/" + chi.URLParam(r, "resource") + "/" + strconv.Itoa(id),
	})
}
