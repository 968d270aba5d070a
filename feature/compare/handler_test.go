package compare

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"decochanges/core/snapshot"
	"decochanges/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	t.Helper()
	app := fiber.New()
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", zap.NewNop(), snapshot.Config{DefaultQuantity: 1})
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, mockClient
}

func TestHandleCompare(t *testing.T) {
	t.Run("ReturnsReport", func(t *testing.T) {
		app, mockClient := setupTestApp(t)
		mockClient.On("GetObject", mock.Anything, "test-bucket", "old.json", mock.Anything).
			Return(object(`{"Attack Jewel 1": 1}`), nil)
		mockClient.On("GetObject", mock.Anything, "test-bucket", "new.json", mock.Anything).
			Return(object(`{"Attack Jewel 1": 3}`), nil)

		req := httptest.NewRequest("GET", "/compare?old=old.json&new=new.json", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			Incremented []struct {
				Name  string `json:"name"`
				Delta int    `json:"delta"`
			} `json:"incremented"`
			Summary struct {
				IncrementedDelta int `json:"incremented_delta"`
			} `json:"summary"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Incremented, 1)
		assert.Equal(t, "Attack Jewel 1", body.Incremented[0].Name)
		assert.Equal(t, 2, body.Incremented[0].Delta)
		assert.Equal(t, 2, body.Summary.IncrementedDelta)
	})

	t.Run("MissingParams", func(t *testing.T) {
		app, _ := setupTestApp(t)

		resp, err := app.Test(httptest.NewRequest("GET", "/compare?old=old.json", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("MalformedExport", func(t *testing.T) {
		app, mockClient := setupTestApp(t)
		mockClient.On("GetObject", mock.Anything, "test-bucket", "old.json", mock.Anything).
			Return(object(`not json`), nil)
		mockClient.On("GetObject", mock.Anything, "test-bucket", "new.json", mock.Anything).
			Return(object(`{}`), nil).Maybe()

		resp, err := app.Test(httptest.NewRequest("GET", "/compare?old=old.json&new=new.json", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("MissingObject", func(t *testing.T) {
		app, mockClient := setupTestApp(t)
		mockClient.On("GetObject", mock.Anything, "test-bucket", "old.json", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."})
		mockClient.On("GetObject", mock.Anything, "test-bucket", "new.json", mock.Anything).
			Return(object(`{}`), nil).Maybe()

		resp, err := app.Test(httptest.NewRequest("GET", "/compare?old=old.json&new=new.json", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestHandleListExports(t *testing.T) {
	app, mockClient := setupTestApp(t)

	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "new.json"}
	ch <- minio.ObjectInfo{Key: "old.txt"}
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))

	resp, err := app.Test(httptest.NewRequest("GET", "/exports/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"new.json", "old.txt"}, body["exports"])
}

func TestHandleUploadExport(t *testing.T) {
	multipartBody := func(t *testing.T, filename string) (*bytes.Buffer, string) {
		t.Helper()
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		part, err := w.CreateFormFile("export", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(`{"Attack Jewel 1": 1}`))
		require.NoError(t, err)
		require.NoError(t, w.Close())
		return &buf, w.FormDataContentType()
	}

	t.Run("Uploads", func(t *testing.T) {
		app, mockClient := setupTestApp(t)
		mockClient.On("PutObject", mock.Anything, "test-bucket", "new.json", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)

		body, contentType := multipartBody(t, "new.json")
		req := httptest.NewRequest("POST", "/exports/", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		mockClient.AssertExpectations(t)
	})

	t.Run("RejectsUnsupportedExtension", func(t *testing.T) {
		app, _ := setupTestApp(t)

		body, contentType := multipartBody(t, "export.csv")
		req := httptest.NewRequest("POST", "/exports/", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("RejectsMissingFile", func(t *testing.T) {
		app, _ := setupTestApp(t)

		resp, err := app.Test(httptest.NewRequest("POST", "/exports/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
