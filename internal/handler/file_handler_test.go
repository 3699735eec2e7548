package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"immodok/internal/domain"
	"immodok/mocks"
)

func fileRouter(h *FileHandler) *gin.Engine {
	r := gin.New()
	r.GET("/api/v1/files/:id", h.Download)
	return r
}

func TestFileHandler_Download(t *testing.T) {
	store := new(mocks.MockDocumentStore)
	store.On("Load", mock.Anything, "deadbeef").Return([]byte("%PDF-1.4 stored"), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/files/deadbeef", nil)
	rec := httptest.NewRecorder()
	fileRouter(NewFileHandler(store)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="deadbeef.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4 stored", rec.Body.String())
}

func TestFileHandler_NotFound(t *testing.T) {
	store := new(mocks.MockDocumentStore)
	store.On("Load", mock.Anything, "missing").Return(nil, domain.ErrFileNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/files/missing", nil)
	rec := httptest.NewRecorder()
	fileRouter(NewFileHandler(store)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "FILE_NOT_FOUND", resp.Error.Code)
}
