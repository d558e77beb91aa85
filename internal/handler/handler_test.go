package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"marketing_cms/internal/model"
	"marketing_cms/internal/repository"
	"marketing_cms/internal/service"

	"github.com/gin-gonic/gin"
)

// In-memory repositories backing the real service layer, so handler tests
// exercise the full request path below the router.

type fakeServiceRepo struct {
	items []model.Service
}

func (f *fakeServiceRepo) FindAll(ctx context.Context) ([]model.Service, error) {
	out := make([]model.Service, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeServiceRepo) FindByAppID(ctx context.Context, appID string) (*model.Service, error) {
	for i := range f.items {
		if f.items[i].ID == appID {
			s := f.items[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeServiceRepo) Create(ctx context.Context, svc *model.Service) error {
	for i := range f.items {
		if f.items[i].ID == svc.ID {
			return repository.ErrDuplicate
		}
	}
	svc.RecordID = len(f.items) + 1
	svc.CreatedAt = time.Now()
	svc.UpdatedAt = svc.CreatedAt
	f.items = append(f.items, *svc)
	return nil
}

func (f *fakeServiceRepo) Update(ctx context.Context, svc *model.Service) error {
	for i := range f.items {
		if f.items[i].ID == svc.ID {
			svc.UpdatedAt = time.Now()
			f.items[i] = *svc
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeServiceRepo) Delete(ctx context.Context, appID string) error {
	for i := range f.items {
		if f.items[i].ID == appID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakePortfolioRepo struct {
	items []model.Portfolio
}

func (f *fakePortfolioRepo) FindAll(ctx context.Context) ([]model.Portfolio, error) {
	out := make([]model.Portfolio, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakePortfolioRepo) FindByAppID(ctx context.Context, appID string) (*model.Portfolio, error) {
	for i := range f.items {
		if f.items[i].ID == appID {
			p := f.items[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePortfolioRepo) Create(ctx context.Context, item *model.Portfolio) error {
	for i := range f.items {
		if f.items[i].ID == item.ID {
			return repository.ErrDuplicate
		}
	}
	item.RecordID = len(f.items) + 1
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	f.items = append(f.items, *item)
	return nil
}

func (f *fakePortfolioRepo) Update(ctx context.Context, item *model.Portfolio) error {
	for i := range f.items {
		if f.items[i].ID == item.ID {
			item.UpdatedAt = time.Now()
			f.items[i] = *item
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakePortfolioRepo) Delete(ctx context.Context, appID string) error {
	for i := range f.items {
		if f.items[i].ID == appID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeContactRepo struct {
	items  []model.Contact
	nextID int64
}

func (f *fakeContactRepo) Create(ctx context.Context, contact *model.Contact) error {
	f.nextID++
	contact.ID = f.nextID
	contact.CreatedAt = time.Now()
	contact.UpdatedAt = contact.CreatedAt
	f.items = append(f.items, *contact)
	return nil
}

func (f *fakeContactRepo) FindAll(ctx context.Context) ([]model.Contact, error) {
	out := make([]model.Contact, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeContactRepo) FindByID(ctx context.Context, id int64) (*model.Contact, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			c := f.items[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeContactRepo) UpdateStatus(ctx context.Context, id int64, status string) (*model.Contact, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Status = status
			f.items[i].UpdatedAt = time.Now()
			c := f.items[i]
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeContactRepo) Delete(ctx context.Context, id int64) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// testRouter wires handlers over the fake repos without auth middleware;
// middleware behavior is covered in its own package.
func testRouter() (*gin.Engine, *fakeServiceRepo, *fakePortfolioRepo, *fakeContactRepo) {
	gin.SetMode(gin.TestMode)

	serviceRepo := &fakeServiceRepo{}
	portfolioRepo := &fakePortfolioRepo{}
	contactRepo := &fakeContactRepo{}

	content := service.NewContentService(serviceRepo, portfolioRepo)
	contacts := service.NewContactService(contactRepo)

	r := gin.New()
	api := r.Group("/api")
	public := api.Group("/public")
	admin := api.Group("/admin")

	NewServiceHandler(content).RegisterServiceRoutes(public, admin)
	NewPortfolioHandler(content).RegisterPortfolioRoutes(public, admin)
	NewContactHandler(contacts).RegisterContactRoutes(public, admin)

	return r, serviceRepo, portfolioRepo, contactRepo
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()

	var out map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}
