package controllers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/models"
	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/utils"
)

// failQueries makes every SELECT on db error out while the returned flag is
// set, simulating a dropped database connection mid-request.
func failQueries(t *testing.T, db *gorm.DB) *bool {
	active := false
	err := db.Callback().Query().Before("gorm:query").Register("test_fail_queries", func(tx *gorm.DB) {
		if active {
			tx.AddError(errors.New("driver: bad connection"))
		}
	})
	require.NoError(t, err)
	return &active
}

func TestSignupAndLogin(t *testing.T) {
	r, db, _ := setupServer(t)

	w := doJSON(t, r, "POST", "/api/signup", "", map[string]interface{}{
		"full_name": "Asha Owner",
		"email":     "asha@example.com",
		"password":  "secret123",
		"phone":     "+91 98765 43210",
		"role":      "owner",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, db.Where("email = ?", "asha@example.com").First(&user).Error)
	assert.Equal(t, models.RoleOwner, user.Role)
	assert.NotEqual(t, "secret123", user.Password)

	w = doJSON(t, r, "POST", "/api/login", "", map[string]interface{}{
		"email":    "asha@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Role  string `json:"role"`
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "owner", resp.Role)
	assert.NotEmpty(t, resp.Token)
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	r, _, _ := setupServer(t)

	w := doJSON(t, r, "POST", "/api/signup", "", map[string]interface{}{
		"full_name": "Nobody",
		"email":     "nobody@example.com",
		"password":  "secret123",
		"role":      "admin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupDuplicateEmail(t *testing.T) {
	r, db, _ := setupServer(t)
	createUser(t, db, "taken@example.com", models.RoleFinder)

	w := doJSON(t, r, "POST", "/api/signup", "", map[string]interface{}{
		"full_name": "Copy Cat",
		"email":     "taken@example.com",
		"password":  "secret123",
		"role":      "finder",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSignupFailedEmailLookupIsNotNotFound(t *testing.T) {
	r, db, _ := setupServer(t)
	failing := failQueries(t, db)

	*failing = true
	w := doJSON(t, r, "POST", "/api/signup", "", map[string]interface{}{
		"full_name": "Asha Owner",
		"email":     "asha@example.com",
		"password":  "secret123",
		"role":      "owner",
	})
	*failing = false

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count, "a failed uniqueness check must not register the user")
}

func TestRefreshRotatesToken(t *testing.T) {
	r, db, _ := setupServer(t)
	user := createUser(t, db, "asha@example.com", models.RoleOwner)

	raw, hashed, err := utils.GenerateRefreshToken()
	require.NoError(t, err)
	require.NoError(t, utils.SaveRefreshToken(db, user.ID, hashed, time.Now().Add(time.Hour)))

	req := httptest.NewRequest("POST", "/api/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: raw})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp.AccessToken)

	// The presented token is dead after a successful refresh.
	_, err = utils.ValidateRefreshToken(db, raw)
	assert.Error(t, err)

	// The replacement arrives as a cookie and is valid for the same user.
	var rotated string
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "refresh_token" {
			rotated = cookie.Value
		}
	}
	require.NotEmpty(t, rotated)
	assert.NotEqual(t, raw, rotated)

	rt, err := utils.ValidateRefreshToken(db, rotated)
	require.NoError(t, err)
	assert.Equal(t, user.ID, rt.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	r, db, _ := setupServer(t)
	createUser(t, db, "asha@example.com", models.RoleOwner)

	w := doJSON(t, r, "POST", "/api/login", "", map[string]interface{}{
		"email":    "asha@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileRequiresToken(t *testing.T) {
	r, _, _ := setupServer(t)

	w := doJSON(t, r, "GET", "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileUpdateKeepsRoleAndEmail(t *testing.T) {
	r, db, _ := setupServer(t)
	user := createUser(t, db, "asha@example.com", models.RoleOwner)

	w := doJSON(t, r, "PUT", "/api/me", tokenFor(t, user), map[string]interface{}{
		"full_name": "Asha Renamed",
		"phone":     "+91 11111 11111",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, "Asha Renamed", updated.FullName)
	assert.Equal(t, "asha@example.com", updated.Email)
	assert.Equal(t, models.RoleOwner, updated.Role)
}
