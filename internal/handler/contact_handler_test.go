package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"marketing_cms/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactHandler_SubmitRejectsBadEmail(t *testing.T) {
	r, _, _, contactRepo := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/public/contact", map[string]any{
		"name":    "Alice",
		"email":   "not-an-email",
		"message": "Hello there",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email format")
	assert.Empty(t, contactRepo.items)
}

func TestContactHandler_SubmitMissingFields(t *testing.T) {
	r, _, _, _ := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/public/contact", map[string]any{
		"name":  "Alice",
		"email": "alice@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "required")
}

func TestContactHandler_SubmitReturnsSummaryOnly(t *testing.T) {
	r, _, _, contactRepo := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/public/contact", map[string]any{
		"name":    "Alice",
		"email":   "Alice@Example.COM",
		"phone":   "+1 555 0100",
		"message": "I'd like a quote for a new site.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	var summary model.ContactSummary
	require.NoError(t, json.Unmarshal(body["contact"], &summary))
	assert.Equal(t, "Alice", summary.Name)
	assert.Equal(t, "alice@example.com", summary.Email)
	assert.NotZero(t, summary.ID)

	// the echo never includes the message or status
	assert.NotContains(t, string(body["contact"]), "message")
	assert.NotContains(t, string(body["contact"]), "status")

	require.Len(t, contactRepo.items, 1)
	assert.Equal(t, model.ContactStatusNew, contactRepo.items[0].Status)
	assert.Equal(t, "I'd like a quote for a new site.", contactRepo.items[0].Message)
}

func TestContactHandler_InvalidIDParam(t *testing.T) {
	r, _, _, _ := testRouter()

	w := doJSON(t, r, http.MethodGet, "/api/admin/contacts/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid contact ID")
}

func TestContactHandler_UpdateStatus(t *testing.T) {
	r, _, _, _ := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/public/contact", map[string]any{
		"name":    "Bob",
		"email":   "bob@example.com",
		"message": "Question about services",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/admin/contacts/1/status", map[string]any{
		"status": "read",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	var contact model.Contact
	require.NoError(t, json.Unmarshal(body["contact"], &contact))
	assert.Equal(t, model.ContactStatusRead, contact.Status)
}

func TestContactHandler_UpdateStatusRejectsUnknown(t *testing.T) {
	r, _, _, contactRepo := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/public/contact", map[string]any{
		"name":    "Bob",
		"email":   "bob@example.com",
		"message": "Question about services",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/admin/contacts/1/status", map[string]any{
		"status": "archived",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, model.ContactStatusNew, contactRepo.items[0].Status)
}

func TestContactHandler_UpdateStatusNotFound(t *testing.T) {
	r, _, _, _ := testRouter()

	w := doJSON(t, r, http.MethodPut, "/api/admin/contacts/99/status", map[string]any{
		"status": "read",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactHandler_ListAndDelete(t *testing.T) {
	r, _, _, _ := testRouter()

	for _, name := range []string{"Alice", "Bob"} {
		w := doJSON(t, r, http.MethodPost, "/api/public/contact", map[string]any{
			"name":    name,
			"email":   "contact@example.com",
			"message": "hi",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/admin/contacts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed struct {
		Contacts []model.Contact `json:"contacts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Contacts, 2)

	w = doJSON(t, r, http.MethodDelete, "/api/admin/contacts/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/admin/contacts/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
