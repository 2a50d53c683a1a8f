package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/api/internal/models"
)

func TestPublicListsNeedNoAuth(t *testing.T) {
	env := newTestEnv(t)
	admin := env.newSession(t, "admin", true)

	requireStatus(t, env.do(t, http.MethodPost, "/api/admin/projects", admin, map[string]any{
		"title":       "Portfolio",
		"description": "This site",
		"highlights":  []string{"fast"},
	}), http.StatusCreated)

	for _, path := range []string{"/api/projects", "/api/achievements", "/api/skills"} {
		w := env.do(t, http.MethodGet, path, "", nil)
		requireStatus(t, w, http.StatusOK)
		assert.True(t, len(w.Body.String()) >= 2, "expected a JSON array for %s", path)
	}

	projects := decodeBody[[]models.Project](t, env.do(t, http.MethodGet, "/api/projects", "", nil))
	require.Len(t, projects, 1)
	assert.Equal(t, "Portfolio", projects[0].Title)
}

func TestSkillOrdering(t *testing.T) {
	env := newTestEnv(t)
	admin := env.newSession(t, "admin", true)

	requireStatus(t, env.do(t, http.MethodPost, "/api/admin/skills", admin, map[string]any{
		"name": "Go", "level": 80, "category": "Languages", "order": 1,
	}), http.StatusCreated)
	requireStatus(t, env.do(t, http.MethodPost, "/api/admin/skills", admin, map[string]any{
		"name": "Rust", "level": 70, "category": "Languages", "order": 0,
	}), http.StatusCreated)

	skills := decodeBody[[]models.Skill](t, env.do(t, http.MethodGet, "/api/skills", "", nil))
	require.Len(t, skills, 2)
	assert.Equal(t, "Rust", skills[0].Name)
	assert.Equal(t, 70, skills[0].Level)
	assert.Equal(t, "Go", skills[1].Name)
	assert.Equal(t, 80, skills[1].Level)
}

func TestCreateSkillValidation(t *testing.T) {
	env := newTestEnv(t)
	admin := env.newSession(t, "admin", true)

	cases := []struct {
		name string
		body map[string]any
		want int
	}{
		{"level zero is valid", map[string]any{"name": "HTML", "level": 0, "category": "Web"}, http.StatusCreated},
		{"level above range", map[string]any{"name": "Go", "level": 101, "category": "Languages"}, http.StatusBadRequest},
		{"level below range", map[string]any{"name": "Go", "level": -1, "category": "Languages"}, http.StatusBadRequest},
		{"level missing", map[string]any{"name": "Go", "category": "Languages"}, http.StatusBadRequest},
		{"name missing", map[string]any{"level": 50, "category": "Languages"}, http.StatusBadRequest},
		{"empty category", map[string]any{"name": "Go", "level": 50, "category": ""}, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireStatus(t, env.do(t, http.MethodPost, "/api/admin/skills", admin, tc.body), tc.want)
		})
	}
}

func TestUnknownFieldsAreRejected(t *testing.T) {
	env := newTestEnv(t)
	admin := env.newSession(t, "admin", true)

	w := env.doRaw(t, http.MethodPost, "/api/admin/skills", admin,
		jsonReader(`{"name":"Go","level":80,"category":"Languages","isAdmin":true}`))
	requireStatus(t, w, http.StatusBadRequest)

	// id and createdAt are assigned server-side and cannot be supplied
	w = env.doRaw(t, http.MethodPost, "/api/admin/projects", admin,
		jsonReader(`{"title":"a","description":"b","id":7}`))
	requireStatus(t, w, http.StatusBadRequest)
}

func TestCreateReturnsAssignedFieldsAndDefaults(t *testing.T) {
	env := newTestEnv(t)
	admin := env.newSession(t, "admin", true)

	w := env.do(t, http.MethodPost, "/api/admin/achievements", admin, map[string]any{
		"title":       "Best Paper",
		"description": "Conference award",
		"date":        "2024-11",
	})
	requireStatus(t, w, http.StatusCreated)

	created := decodeBody[models.Achievement](t, w)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, 0, created.Order)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "Best Paper", created.Title)
}

func TestPartialUpdateLeavesOtherFieldsAlone(t *testing.T) {
	env := newTestEnv(t)
	admin := env.newSession(t, "admin", true)

	w := env.do(t, http.MethodPost, "/api/admin/projects", admin, map[string]any{
		"title":       "Old title",
		"description": "Original description",
		"order":       5,
	})
	requireStatus(t, w, http.StatusCreated)
	created := decodeBody[models.Project](t, w)

	w = env.do(t, http.MethodPatch, fmt.Sprintf("/api/admin/projects/%d", created.ID), admin, map[string]any{
		"title": "New title",
	})
	requireStatus(t, w, http.StatusOK)

	updated := decodeBody[models.Project](t, w)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "Original description", updated.Description)
	assert.Equal(t, 5, updated.Order)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestUpdateUnknownIDLeavesCollectionUnchanged(t *testing.T) {
	env := newTestEnv(t)
	admin := env.newSession(t, "admin", true)

	requireStatus(t, env.do(t, http.MethodPost, "/api/admin/skills", admin, map[string]any{
		"name": "Go", "level": 80, "category": "Languages",
	}), http.StatusCreated)

	before := decodeBody[[]models.Skill](t, env.do(t, http.MethodGet, "/api/skills", "", nil))

	w := env.do(t, http.MethodPatch, "/api/admin/skills/999", admin, map[string]any{"level": 10})
	requireStatus(t, w, http.StatusNotFound)

	after := decodeBody[[]models.Skill](t, env.do(t, http.MethodGet, "/api/skills", "", nil))
	assert.Equal(t, before, after)
}

func TestDeleteTwice(t *testing.T) {
	env := newTestEnv(t)
	admin := env.newSession(t, "admin", true)

	w := env.do(t, http.MethodPost, "/api/admin/achievements", admin, map[string]any{
		"title": "a", "description": "b", "date": "2024",
	})
	requireStatus(t, w, http.StatusCreated)
	created := decodeBody[models.Achievement](t, w)

	path := fmt.Sprintf("/api/admin/achievements/%d", created.ID)
	requireStatus(t, env.do(t, http.MethodDelete, path, admin, nil), http.StatusNoContent)
	requireStatus(t, env.do(t, http.MethodDelete, path, admin, nil), http.StatusNotFound)
}

func TestBadIDParam(t *testing.T) {
	env := newTestEnv(t)
	admin := env.newSession(t, "admin", true)

	requireStatus(t, env.do(t, http.MethodDelete, "/api/admin/projects/abc", admin, nil), http.StatusBadRequest)
	requireStatus(t, env.do(t, http.MethodPatch, "/api/admin/projects/-1", admin, map[string]any{"title": "x"}), http.StatusBadRequest)
}
