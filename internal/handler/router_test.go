package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/require"

	"github.com/notegate/backend/internal/config"
	"github.com/notegate/backend/internal/model"
	"github.com/notegate/backend/internal/password"
	"github.com/notegate/backend/internal/service"
)

// memNoteRepo keeps notes in a slice and applies the same visibility
// rules as the postgres queries.
type memNoteRepo struct {
	notes  []model.Note
	nextID int64
}

func (m *memNoteRepo) ListPublic(ctx context.Context) ([]model.Note, error) {
	out := make([]model.Note, 0)
	for _, n := range m.notes {
		if n.IsPublic {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memNoteRepo) ListOwnedBy(ctx context.Context, owner string) ([]model.Note, error) {
	out := make([]model.Note, 0)
	for _, n := range m.notes {
		if n.Owner == owner {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memNoteRepo) GetPublic(ctx context.Context, id int64) (*model.Note, error) {
	for _, n := range m.notes {
		if n.ID == id && n.IsPublic {
			note := n
			return &note, nil
		}
	}
	return nil, nil
}

func (m *memNoteRepo) GetVisible(ctx context.Context, id int64, identity string) (*model.Note, error) {
	for _, n := range m.notes {
		if n.ID == id && (n.Owner == identity || n.IsPublic) {
			note := n
			return &note, nil
		}
	}
	return nil, nil
}

func (m *memNoteRepo) Create(ctx context.Context, owner, title, content string, isPublic bool) (int64, error) {
	m.nextID++
	m.notes = append(m.notes, model.Note{ID: m.nextID, Title: title, Content: content, Owner: owner, IsPublic: isPublic})
	return m.nextID, nil
}

func (m *memNoteRepo) Update(ctx context.Context, id int64, owner string, req model.UpdateNoteRequest) (bool, error) {
	for i, n := range m.notes {
		if n.ID == id && n.Owner == owner {
			if req.Title != nil {
				m.notes[i].Title = *req.Title
			}
			if req.Content != nil {
				m.notes[i].Content = *req.Content
			}
			if req.IsPublic != nil {
				m.notes[i].IsPublic = *req.IsPublic
			}
			return true, nil
		}
	}
	return false, nil
}

func (m *memNoteRepo) Delete(ctx context.Context, id int64, owner string) (bool, error) {
	for i, n := range m.notes {
		if n.ID == id && n.Owner == owner {
			m.notes = append(m.notes[:i], m.notes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memNoteRepo) Stats(ctx context.Context, owner string) (model.NoteStats, error) {
	stats := model.NoteStats{Owner: owner}
	for _, n := range m.notes {
		if n.Owner != owner {
			continue
		}
		stats.TotalNotes++
		if n.IsPublic {
			stats.PublicNotes++
		}
	}
	stats.PrivateNotes = stats.TotalNotes - stats.PublicNotes
	return stats, nil
}

func testRouter(t *testing.T, authCfg config.AuthConfig) (*gin.Engine, *service.AuthService, *memNoteRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authSvc, err := service.NewAuthService(authCfg, false, zerolog.Nop())
	require.NoError(t, err)

	repo := &memNoteRepo{
		notes: []model.Note{
			{ID: 1, Title: "earth private", Content: "mine", Owner: "earth", IsPublic: false},
			{ID: 2, Title: "alice public", Content: "shared", Owner: "alice", IsPublic: true},
			{ID: 3, Title: "alice private", Content: "hers", Owner: "alice", IsPublic: false},
		},
		nextID: 3,
	}
	noteSvc := service.NewNoteService(repo)

	router := NewRouter(config.Config{}, zerolog.Nop(), authSvc, noteSvc)
	return router, authSvc, repo
}

func adminConfig(t *testing.T) config.AuthConfig {
	t.Helper()
	hash, err := password.Hash("earth-pass")
	require.NoError(t, err)
	return config.AuthConfig{
		AdminUser:     "earth",
		AdminPassHash: hash,
		JWTSecret:     "0123456789abcdef0123456789abcdef",
		TokenTTL:      "1h",
	}
}

func bearer(t *testing.T, svc *service.AuthService) string {
	t.Helper()
	token, _, err := svc.IssueToken("earth")
	require.NoError(t, err)
	return "Bearer " + token
}

func TestLoginSuccess(t *testing.T) {
	router, _, _ := testRouter(t, adminConfig(t))

	apitest.Handler(router).
		Post("/login").
		JSON(`{"username":"earth","password":"earth-pass"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Present("$.token")).
		End()
}

func TestLoginFailureIsGeneric(t *testing.T) {
	router, _, _ := testRouter(t, adminConfig(t))

	// Wrong password and wrong username must be indistinguishable.
	for _, body := range []string{
		`{"username":"earth","password":"wrong"}`,
		`{"username":"mars","password":"earth-pass"}`,
	} {
		apitest.Handler(router).
			Post("/login").
			JSON(body).
			Expect(t).
			Status(http.StatusUnauthorized).
			Body(`{"error":"Invalid credentials"}`).
			End()
	}
}

func TestLoginWithMissingCredentialConfig(t *testing.T) {
	cfg := adminConfig(t)
	cfg.AdminUser = ""
	router, _, _ := testRouter(t, cfg)

	apitest.Handler(router).
		Post("/login").
		JSON(`{"username":"earth","password":"earth-pass"}`).
		Expect(t).
		Status(http.StatusInternalServerError).
		Body(`{"error":"Server configuration error"}`).
		End()
}

func TestPublicListOnlyShowsPublicNotes(t *testing.T) {
	router, _, _ := testRouter(t, adminConfig(t))

	apitest.Handler(router).
		Get("/contents").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len("$", 1)).
		Assert(jsonpath.Equal("$[0].title", "alice public")).
		End()
}

func TestPublicGetByID(t *testing.T) {
	router, _, _ := testRouter(t, adminConfig(t))

	apitest.Handler(router).
		Get("/contents/2").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.user", "alice")).
		End()

	// A private note is a 404 for anonymous callers, not a 403.
	apitest.Handler(router).
		Get("/contents/1").
		Expect(t).
		Status(http.StatusNotFound).
		Body(`{"error":"Note not found"}`).
		End()
}

func TestAdminEndpointsRequireToken(t *testing.T) {
	router, _, _ := testRouter(t, adminConfig(t))

	cases := map[string]func() *apitest.Request{
		"no header":    func() *apitest.Request { return apitest.Handler(router).Get("/admin/contents") },
		"wrong scheme": func() *apitest.Request { return apitest.Handler(router).Get("/admin/contents").Header("Authorization", "Basic Zm9v") },
		"empty token":  func() *apitest.Request { return apitest.Handler(router).Get("/admin/contents").Header("Authorization", "Bearer ") },
		"garbage":      func() *apitest.Request { return apitest.Handler(router).Get("/admin/contents").Header("Authorization", "Bearer nope") },
	}

	for name, request := range cases {
		t.Run(name, func(t *testing.T) {
			request().
				Expect(t).
				Status(http.StatusUnauthorized).
				Body(`{"error":"Invalid or expired token"}`).
				End()
		})
	}
}

func TestAdminListReturnsOwnNotesOnly(t *testing.T) {
	router, authSvc, _ := testRouter(t, adminConfig(t))

	apitest.Handler(router).
		Get("/admin/contents").
		Header("Authorization", bearer(t, authSvc)).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len("$", 1)).
		Assert(jsonpath.Equal("$[0].user", "earth")).
		End()
}

func TestAdminCreateAttributesIdentity(t *testing.T) {
	router, authSvc, repo := testRouter(t, adminConfig(t))

	apitest.Handler(router).
		Post("/admin/contents").
		Header("Authorization", bearer(t, authSvc)).
		JSON(`{"title":"fresh","content":"body","is_public":true,"user":"mallory"}`).
		Expect(t).
		Status(http.StatusCreated).
		Assert(jsonpath.Present("$.id")).
		End()

	created := repo.notes[len(repo.notes)-1]
	require.Equal(t, "earth", created.Owner, "owner must come from the token, not the payload")
}

func TestAdminGetSeesOwnAndPublic(t *testing.T) {
	router, authSvc, _ := testRouter(t, adminConfig(t))
	token := bearer(t, authSvc)

	// Own private note.
	apitest.Handler(router).
		Get("/admin/contents/1").
		Header("Authorization", token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.content", "mine")).
		End()

	// Someone else's public note.
	apitest.Handler(router).
		Get("/admin/contents/2").
		Header("Authorization", token).
		Expect(t).
		Status(http.StatusOK).
		End()

	// Someone else's private note looks nonexistent.
	apitest.Handler(router).
		Get("/admin/contents/3").
		Header("Authorization", token).
		Expect(t).
		Status(http.StatusNotFound).
		Body(`{"error":"Note not found"}`).
		End()
}

func TestAdminUpdateRules(t *testing.T) {
	router, authSvc, _ := testRouter(t, adminConfig(t))
	token := bearer(t, authSvc)

	// Updating another owner's public note is a 404, never a 403.
	apitest.Handler(router).
		Put("/admin/contents/2").
		Header("Authorization", token).
		JSON(`{"title":"hijack"}`).
		Expect(t).
		Status(http.StatusNotFound).
		Body(`{"error":"Note not found"}`).
		End()

	// Empty update never reaches persistence.
	apitest.Handler(router).
		Put("/admin/contents/1").
		Header("Authorization", token).
		JSON(`{}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Body(`{"error":"No fields to update"}`).
		End()

	apitest.Handler(router).
		Put("/admin/contents/1").
		Header("Authorization", token).
		JSON(`{"content":"rewritten","is_public":true}`).
		Expect(t).
		Status(http.StatusOK).
		End()

	apitest.Handler(router).
		Get("/contents/1").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.content", "rewritten")).
		End()
}

func TestAdminDelete(t *testing.T) {
	router, authSvc, _ := testRouter(t, adminConfig(t))
	token := bearer(t, authSvc)

	apitest.Handler(router).
		Delete("/admin/contents/3").
		Header("Authorization", token).
		Expect(t).
		Status(http.StatusNotFound).
		End()

	apitest.Handler(router).
		Delete("/admin/contents/1").
		Header("Authorization", token).
		Expect(t).
		Status(http.StatusOK).
		End()

	apitest.Handler(router).
		Get("/admin/contents/1").
		Header("Authorization", token).
		Expect(t).
		Status(http.StatusNotFound).
		End()
}

func TestAdminStats(t *testing.T) {
	router, authSvc, repo := testRouter(t, adminConfig(t))
	token := bearer(t, authSvc)

	for i := 0; i < 2; i++ {
		_, err := repo.Create(context.Background(), "earth", fmt.Sprintf("extra %d", i), "body", true)
		require.NoError(t, err)
	}

	apitest.Handler(router).
		Get("/admin/stats").
		Header("Authorization", token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.total_notes", float64(3))).
		Assert(jsonpath.Equal("$.public_notes", float64(2))).
		Assert(jsonpath.Equal("$.private_notes", float64(1))).
		Assert(jsonpath.Equal("$.user", "earth")).
		End()
}

func TestInvalidNoteID(t *testing.T) {
	router, authSvc, _ := testRouter(t, adminConfig(t))

	apitest.Handler(router).
		Get("/admin/contents/abc").
		Header("Authorization", bearer(t, authSvc)).
		Expect(t).
		Status(http.StatusBadRequest).
		Body(`{"error":"Invalid note id"}`).
		End()
}
