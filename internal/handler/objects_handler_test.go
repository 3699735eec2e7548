package handler

import (
	"encoding/json"
	"errors"
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

func objectsRouter(h *ObjectsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/api/v1/objects", h.List)
	return r
}

func getObjects(t *testing.T, h *ObjectsHandler) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/objects", nil)
	rec := httptest.NewRecorder()
	objectsRouter(h).ServeHTTP(rec, req)
	return rec
}

func TestObjectsHandler_List(t *testing.T) {
	objects := new(mocks.MockObjectSource)
	objects.On("LoadObjects", mock.Anything).Return([]domain.ObjectRecord{
		{ObjectNumber: "S1", BuildingName: "Wohnanlage Sonnenhof"},
	}, nil)

	rec := getObjects(t, NewObjectsHandler(objects))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Success bool                  `json:"success"`
		Data    []domain.ObjectRecord `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "S1", resp.Data[0].ObjectNumber)
}

func TestObjectsHandler_List_DegradesToEmpty(t *testing.T) {
	objects := new(mocks.MockObjectSource)
	objects.On("LoadObjects", mock.Anything).Return(nil, errors.New("no such file"))

	rec := getObjects(t, NewObjectsHandler(objects))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Success bool                  `json:"success"`
		Data    []domain.ObjectRecord `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
}
