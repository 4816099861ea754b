package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/models"
	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/utils"
)

const refreshTokenTTL = 7 * 24 * time.Hour

// SignupHandler registers a new user with a fixed role. Owners manage
// listings, finders browse them; the role never changes afterwards.
func SignupHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			FullName string `json:"full_name" binding:"required"`
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required,min=6"`
			Phone    string `json:"phone"`
			Role     string `json:"role" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !models.ValidRole(input.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "role must be owner or finder"})
			return
		}

		var existing models.User
		err := db.Where("email = ?", input.Email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			// A failed lookup is not proof the email is free.
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check email"})
			return
		}

		hashedPassword, err := utils.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := models.User{
			FullName:  input.FullName,
			Email:     input.Email,
			Phone:     input.Phone,
			Role:      input.Role,
			Password:  hashedPassword,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"status":  "success",
			"message": "User registered successfully",
			"user": gin.H{
				"id":    user.ID,
				"name":  user.FullName,
				"email": user.Email,
				"role":  user.Role,
			},
		})
	}
}

// LoginHandler checks credentials and issues an access JWT plus a refresh
// cookie. The response carries the role so the client can pick the owner or
// finder dashboard.
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		if !utils.CheckPasswordHash(input.Password, user.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := utils.CreateToken(user.ID, user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating access token"})
			return
		}

		refreshToken, hashedToken, err := utils.GenerateRefreshToken()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating refresh token"})
			return
		}

		expiresAt := time.Now().Add(refreshTokenTTL)
		if err := utils.SaveRefreshToken(db, user.ID, hashedToken, expiresAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save refresh token"})
			return
		}

		c.SetCookie(
			"refresh_token",
			refreshToken,
			int(time.Until(expiresAt).Seconds()),
			"/",
			"",
			false,
			true,
		)

		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"role":   user.Role,
			"token":  token,
			"user": gin.H{
				"id":    user.ID,
				"name":  user.FullName,
				"email": user.Email,
			},
		})
	}
}

func RefreshTokenHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		refreshToken, err := c.Cookie("refresh_token")
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token required"})
			return
		}

		rt, err := utils.ValidateRefreshToken(db, refreshToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
			return
		}

		// The role lives on the user row, never in the refresh token.
		var user models.User
		if err := db.First(&user, rt.UserID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User no longer exists"})
			return
		}

		accessToken, err := utils.CreateToken(user.ID, user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating access token"})
			return
		}

		// Rotate: the presented refresh token dies with this call.
		newRefresh, newHashed, err := utils.GenerateRefreshToken()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating refresh token"})
			return
		}

		expiresAt := time.Now().Add(refreshTokenTTL)
		if err := utils.SaveRefreshToken(db, user.ID, newHashed, expiresAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save refresh token"})
			return
		}

		c.SetCookie(
			"refresh_token",
			newRefresh,
			int(time.Until(expiresAt).Seconds()),
			"/",
			"",
			false,
			true,
		)

		c.JSON(http.StatusOK, gin.H{
			"status":       "success",
			"access_token": accessToken,
		})
	}
}

func LogoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		refreshToken, err := c.Cookie("refresh_token")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Refresh token required"})
			return
		}

		if err := utils.DeleteRefreshToken(db, refreshToken); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not logout"})
			return
		}

		c.SetCookie("refresh_token", "", -1, "/", "", false, true)

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Logged out successfully",
		})
	}
}
