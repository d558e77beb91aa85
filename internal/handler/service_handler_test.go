package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"marketing_cms/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validServicePayload() map[string]any {
	return map[string]any{
		"id":               "web-development",
		"icon":             "Code",
		"title":            "Web Development",
		"shortDescription": "Modern web apps",
		"fullDescription":  "Full stack web development",
		"longDescription":  "We build modern web applications end to end.",
		"color":            "#3B82F6",
		"gradient":         "from-blue-500 to-cyan-500",
		"features":         []string{"Responsive design", "SEO"},
		"technologies":     []string{"React", "Go"},
	}
}

func TestServiceHandler_CreateAndList(t *testing.T) {
	r, _, _, _ := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/admin/services", validServicePayload())
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	var created model.Service
	require.NoError(t, json.Unmarshal(body["service"], &created))
	assert.Equal(t, "web-development", created.ID)
	assert.Equal(t, []string{"Responsive design", "SEO"}, created.Features)
	// omitted list fields come back as empty lists, not null
	assert.Equal(t, []string{}, created.Benefits)

	w = doJSON(t, r, http.MethodGet, "/api/public/services", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed struct {
		Services []model.Service `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Services, 1)
	assert.Equal(t, "Web Development", listed.Services[0].Title)
}

func TestServiceHandler_CreateDuplicateID(t *testing.T) {
	r, _, _, _ := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/admin/services", validServicePayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/admin/services", validServicePayload())
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestServiceHandler_CreateMissingFields(t *testing.T) {
	r, _, _, _ := testRouter()

	payload := validServicePayload()
	delete(payload, "title")

	w := doJSON(t, r, http.MethodPost, "/api/admin/services", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServiceHandler_GetNotFound(t *testing.T) {
	r, _, _, _ := testRouter()

	w := doJSON(t, r, http.MethodGet, "/api/public/services/no-such", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Service not found")
}

func TestServiceHandler_PartialUpdate(t *testing.T) {
	r, _, _, _ := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/admin/services", validServicePayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/admin/services/web-development", map[string]any{
		"title": "Web & Mobile Development",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	var updated model.Service
	require.NoError(t, json.Unmarshal(body["service"], &updated))
	assert.Equal(t, "Web & Mobile Development", updated.Title)
	// untouched fields survive the merge
	assert.Equal(t, "Modern web apps", updated.ShortDescription)
	assert.Equal(t, []string{"React", "Go"}, updated.Technologies)
}

func TestServiceHandler_UpdateEmptiesRequiredField(t *testing.T) {
	r, _, _, _ := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/admin/services", validServicePayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/admin/services/web-development", map[string]any{
		"title": "",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// record untouched
	w = doJSON(t, r, http.MethodGet, "/api/public/services/web-development", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Web Development"`)
}

func TestServiceHandler_UpdateNotFound(t *testing.T) {
	r, _, _, _ := testRouter()

	w := doJSON(t, r, http.MethodPut, "/api/admin/services/ghost", map[string]any{
		"title": "Ghost",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServiceHandler_DeleteTwice(t *testing.T) {
	r, _, _, _ := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/admin/services", validServicePayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/admin/services/web-development", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/admin/services/web-development", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPortfolioHandler_CreateAndGet(t *testing.T) {
	r, _, _, _ := testRouter()

	payload := map[string]any{
		"id":              "nexa-dashboard",
		"title":           "Nexa Dashboard",
		"tagline":         "Analytics at a glance",
		"category":        "Web App",
		"image":           "/images/nexa.png",
		"color":           "#10B981",
		"liveLink":        "https://dashboard.example.com",
		"description":     "Analytics dashboard",
		"fullDescription": "A realtime analytics dashboard for marketing teams.",
		"technologies":    []string{"React", "PostgreSQL"},
		"client":          "Nexa Inc",
		"duration":        "3 months",
		"status":          "Live",
	}

	w := doJSON(t, r, http.MethodPost, "/api/admin/portfolio", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/public/portfolio/nexa-dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	var item model.Portfolio
	require.NoError(t, json.Unmarshal(body["portfolio"], &item))
	assert.Equal(t, "Nexa Dashboard", item.Title)
	require.NotNil(t, item.LiveLink)
	assert.Equal(t, "https://dashboard.example.com", *item.LiveLink)
	// optional icon omitted entirely
	assert.Nil(t, item.Icon)
}

func TestPortfolioHandler_GetNotFound(t *testing.T) {
	r, _, _, _ := testRouter()

	w := doJSON(t, r, http.MethodGet, "/api/public/portfolio/no-such", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Portfolio item not found")
}
