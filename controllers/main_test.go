package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/models"
	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/routes"
	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/storage"
	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Property{},
		&models.PropertyImage{}, &models.BookingRequest{}, &models.RefreshToken{}))
	return db
}

func setupServer(t *testing.T) (*gin.Engine, *gorm.DB, *storage.DiskStore) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	store, err := storage.NewDiskStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	return routes.SetupRouter(db, store), db, store
}

func createUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	user := models.User{
		FullName: "Test " + role,
		Email:    email,
		Role:     role,
		Password: hash,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	token, err := utils.CreateToken(user.ID, user.Role)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// multipartBody builds a listing form with an optional image part.
func multipartBody(t *testing.T, fields map[string]string, imageName string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if imageName != "" {
		fw, err := mw.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = io.Copy(fw, bytes.NewReader([]byte("not-a-real-image")))
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func doMultipart(t *testing.T, r http.Handler, method, path, token string, fields map[string]string, imageName string) *httptest.ResponseRecorder {
	body, contentType := multipartBody(t, fields, imageName)

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func storedFileCount(t *testing.T, dir string) int {
	matches, err := filepath.Glob(filepath.Join(dir, "properties", "*", "*"))
	require.NoError(t, err)
	return len(matches)
}
