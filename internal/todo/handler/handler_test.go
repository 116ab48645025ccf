package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/todolists/todolists/internal/archive"
	"github.com/todolists/todolists/internal/todo"
	"github.com/todolists/todolists/internal/todo/repository"
	"github.com/todolists/todolists/internal/todo/service"
)

type stubArchiver struct{ got *todo.List }

func (s *stubArchiver) Archive(ctx context.Context, l todo.List) (*archive.Receipt, error) {
	s.got = &l
	return &archive.Receipt{Key: "lists/" + l.Name + "/x.json", URL: "http://minio/x", ExpiresAt: time.Now(), Items: len(l.Items)}, nil
}

type downItemRepo struct{}

func (downItemRepo) List(ctx context.Context) ([]todo.Item, error) { return nil, errors.New("down") }
func (downItemRepo) SeedIfEmpty(ctx context.Context, items []todo.Item) (bool, error) {
	return false, errors.New("down")
}
func (downItemRepo) Insert(ctx context.Context, item todo.Item) (todo.Item, error) {
	return todo.Item{}, errors.New("down")
}
func (downItemRepo) Delete(ctx context.Context, id string) error { return errors.New("down") }

func newTestRouter(arch Archiver) (*gin.Engine, *repository.MemoryListRepo) {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	lists := repository.NewMemoryListRepo()
	RegisterListRoutes(g, service.NewRouter(service.NewItemService(repository.NewMemoryItemRepo()), service.NewListService(lists)), arch)
	return g, lists
}

func do(t *testing.T, g *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, todo.List) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	var l todo.List
	if w.Code < 300 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &l))
	}
	return w, l
}

func TestDefaultListFlow(t *testing.T) {
	g, _ := newTestRouter(nil)

	w, l := do(t, g, http.MethodGet, "/api/lists", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Today", l.Name)
	require.Len(t, l.Items, 3)

	w, l = do(t, g, http.MethodPost, "/api/items", `{"name":"eggs","list":"Today"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, l.Items, 4)
	require.Equal(t, "eggs", l.Items[3].Name)

	w, l = do(t, g, http.MethodDelete, "/api/lists/today/items/"+l.Items[0].ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, l.Items, 3)
	require.Equal(t, "eggs", l.Items[2].Name)
}

func TestTodayAliasesDefaultList(t *testing.T) {
	g, lists := newTestRouter(nil)

	_, viaRoot := do(t, g, http.MethodGet, "/api/lists", "")
	w, viaName := do(t, g, http.MethodGet, "/api/lists/today", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, viaRoot, viaName)

	doc, err := lists.FindByName(context.Background(), "Today")
	require.NoError(t, err)
	require.Nil(t, doc, "the default list never becomes a list document")
}

func TestCustomListFlow(t *testing.T) {
	g, _ := newTestRouter(nil)

	w, home := do(t, g, http.MethodGet, "/api/lists/home", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Home", home.Name)
	require.Len(t, home.Items, 3)

	w, again := do(t, g, http.MethodGet, "/api/lists/Home", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, home.ID, again.ID)

	w, l := do(t, g, http.MethodPost, "/api/lists/home/items", `{"name":"water plants"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, l.Items, 4)

	w, l = do(t, g, http.MethodDelete, "/api/lists/Home/items/"+l.Items[3].ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, home.Items, l.Items)
}

func TestAddItem_FormStyleCreatesListWithoutSeed(t *testing.T) {
	g, _ := newTestRouter(nil)

	w, l := do(t, g, http.MethodPost, "/api/items", `{"name":"buy milk","list":"errands"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "Errands", l.Name)
	require.Len(t, l.Items, 1)
	require.Equal(t, "buy milk", l.Items[0].Name)
}

func TestAddItem_EmptyListNameGoesToDefault(t *testing.T) {
	g, lists := newTestRouter(nil)

	w, l := do(t, g, http.MethodPost, "/api/items", `{"name":"eggs"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "Today", l.Name)
	require.Equal(t, "eggs", l.Items[0].Name, "first add lands before any seeding read")

	doc, err := lists.FindByName(context.Background(), "")
	require.NoError(t, err)
	require.Nil(t, doc)
}

func TestValidationErrors(t *testing.T) {
	g, _ := newTestRouter(nil)

	w, _ := do(t, g, http.MethodPost, "/api/lists/home/items", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, g, http.MethodPost, "/api/lists/home/items", `{"name":"   "}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, g, http.MethodPost, "/api/items", `not json`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteUnknownIsLenient(t *testing.T) {
	g, lists := newTestRouter(nil)

	w, l := do(t, g, http.MethodDelete, "/api/lists/ghost/items/nope", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Ghost", l.Name)
	require.Empty(t, l.Items)
	doc, err := lists.FindByName(context.Background(), "Ghost")
	require.NoError(t, err)
	require.Nil(t, doc)

	w, l = do(t, g, http.MethodDelete, "/api/lists/Today/items/nope", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, l.Items, 3)
}

func TestStoreUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	RegisterListRoutes(g, service.NewRouter(service.NewItemService(downItemRepo{}), service.NewListService(repository.NewMemoryListRepo())), nil)

	w, _ := do(t, g, http.MethodGet, "/api/lists", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.NotContains(t, w.Body.String(), "down", "store errors are not leaked")
}

func TestArchiveEndpoint(t *testing.T) {
	g, _ := newTestRouter(nil)
	w, _ := do(t, g, http.MethodPost, "/api/lists/home/archive", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	arch := &stubArchiver{}
	g, _ = newTestRouter(arch)
	req := httptest.NewRequest(http.MethodPost, "/api/lists/home/archive", nil)
	rw := httptest.NewRecorder()
	g.ServeHTTP(rw, req)
	require.Equal(t, http.StatusCreated, rw.Code)
	var rec archive.Receipt
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &rec))
	require.Equal(t, 3, rec.Items)
	require.NotNil(t, arch.got)
	require.Equal(t, "Home", arch.got.Name)
}
