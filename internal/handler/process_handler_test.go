package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"immodok/internal/domain"
	"immodok/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func processRouter(h *ProcessHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/v1/process", h.Process)
	return r
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func postProcess(t *testing.T, r *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestProcessHandler_Success(t *testing.T) {
	svc := new(mockProcessService)
	number := "S1"
	svc.On("Process", mock.Anything, mock.MatchedBy(func(in service.ProcessInput) bool {
		return in.Filename == "scan.pdf" && len(in.Data) > 0 && in.FileID == ""
	})).Return(&domain.ResultRecord{
		FileID:            "deadbeef",
		DocType:           "Rechnung",
		Vendor:            "ACME GmbH",
		Currency:          "EUR",
		BuildingMatch:     domain.BuildingMatch{ObjectNumber: &number},
		SuggestedFilename: "S1_Rechnung_ACME_GmbH.pdf",
	}, nil)

	body, contentType := multipartBody(t, "file", "scan.pdf", []byte("%PDF-1.4 content"))
	rec := postProcess(t, processRouter(NewProcessHandler(svc, 50)), body, contentType)

	require.Equal(t, http.StatusOK, rec.Code)
	var result domain.ResultRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "deadbeef", result.FileID)
	assert.Equal(t, "Rechnung", result.DocType)
	require.NotNil(t, result.BuildingMatch.ObjectNumber)
	assert.Equal(t, "S1", *result.BuildingMatch.ObjectNumber)
	svc.AssertExpectations(t)
}

func TestProcessHandler_MissingFile(t *testing.T) {
	svc := new(mockProcessService)
	body, contentType := multipartBody(t, "document", "scan.pdf", []byte("%PDF-1.4"))

	rec := postProcess(t, processRouter(NewProcessHandler(svc, 50)), body, contentType)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "MISSING_FILE", resp.Error.Code)
	svc.AssertNotCalled(t, "Process")
}

func TestProcessHandler_NonPDFName(t *testing.T) {
	svc := new(mockProcessService)
	body, contentType := multipartBody(t, "file", "scan.docx", []byte("not a pdf"))

	rec := postProcess(t, processRouter(NewProcessHandler(svc, 50)), body, contentType)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UNSUPPORTED_FILE_TYPE", resp.Error.Code)
	svc.AssertNotCalled(t, "Process")
}

func TestProcessHandler_UppercaseExtensionAccepted(t *testing.T) {
	svc := new(mockProcessService)
	svc.On("Process", mock.Anything, mock.Anything).
		Return(&domain.ResultRecord{FileID: "x"}, nil)

	body, contentType := multipartBody(t, "file", "SCAN.PDF", []byte("%PDF-1.4 content"))
	rec := postProcess(t, processRouter(NewProcessHandler(svc, 50)), body, contentType)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProcessHandler_FileTooLarge(t *testing.T) {
	svc := new(mockProcessService)
	// 1 MB limit, 2 MB payload.
	body, contentType := multipartBody(t, "file", "scan.pdf", bytes.Repeat([]byte("a"), 2*1024*1024))

	rec := postProcess(t, processRouter(NewProcessHandler(svc, 1)), body, contentType)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "FILE_TOO_LARGE", resp.Error.Code)
	svc.AssertNotCalled(t, "Process")
}

func TestProcessHandler_DomainErrorsMapped(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"empty document", domain.ErrEmptyDocument, http.StatusBadRequest, "EMPTY_DOCUMENT"},
		{"encrypted", domain.ErrEncryptedDocument, http.StatusBadRequest, "ENCRYPTED_DOCUMENT"},
		{"unreadable", domain.ErrUnreadableDocument, http.StatusBadRequest, "UNREADABLE_DOCUMENT"},
		{"storage failed", domain.ErrStorageFailed, http.StatusInternalServerError, "STORAGE_FAILED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockProcessService)
			svc.On("Process", mock.Anything, mock.Anything).Return(nil, tt.err)

			body, contentType := multipartBody(t, "file", "scan.pdf", []byte("%PDF-1.4 content"))
			rec := postProcess(t, processRouter(NewProcessHandler(svc, 50)), body, contentType)

			require.Equal(t, tt.wantStatus, rec.Code)
			var resp APIResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}
