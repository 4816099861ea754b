package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/middlewares"
	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/models"
)

// CreateBookingRequest raises a finder's interest in a listing. The target
// must exist and be available, and a finder gets one pending request per
// property at a time.
func CreateBookingRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		finderID := c.GetUint(middlewares.ContextUserID)

		var input struct {
			PropertyID uint   `json:"property_id" binding:"required"`
			Message    string `json:"message"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking data"})
			return
		}

		var property models.Property
		if err := db.First(&property, input.PropertyID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		if !property.IsAvailable {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property is not available"})
			return
		}

		var existing models.BookingRequest
		err := db.Where("finder_id = ? AND property_id = ? AND status = ?",
			finderID, property.ID, models.BookingPending).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "You already have a pending request for this property"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			// A failed probe must not slip through as "no duplicate".
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing requests"})
			return
		}

		request := models.BookingRequest{
			FinderID:   finderID,
			PropertyID: property.ID,
			Message:    input.Message,
			Status:     models.BookingPending,
		}

		if err := db.Create(&request).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking request"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Booking request sent",
			"request": request,
		})
	}
}

// GetFinderRequests lists the finder's own requests with listings preloaded.
func GetFinderRequests(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		finderID := c.GetUint(middlewares.ContextUserID)

		var requests []models.BookingRequest
		if err := db.Preload("Property").
			Where("finder_id = ?", finderID).
			Order("created_at desc").
			Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking requests"})
			return
		}

		c.JSON(http.StatusOK, requests)
	}
}

// WithdrawBookingRequest deletes the finder's own request while it is still
// pending. Accepted or declined requests stay on record.
func WithdrawBookingRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		finderID := c.GetUint(middlewares.ContextUserID)

		var request models.BookingRequest
		if err := db.First(&request, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking request not found"})
			return
		}

		if request.FinderID != finderID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to withdraw this request"})
			return
		}
		if request.Status != models.BookingPending {
			c.JSON(http.StatusConflict, gin.H{"error": "Only pending requests can be withdrawn"})
			return
		}

		if err := db.Delete(&request).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to withdraw request"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Booking request withdrawn"})
	}
}

// GetOwnerRequests lists every request raised against the owner's listings.
func GetOwnerRequests(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.GetUint(middlewares.ContextUserID)

		var requests []models.BookingRequest
		if err := db.Preload("Finder").Preload("Property").
			Joins("JOIN properties ON properties.id = booking_requests.property_id").
			Where("properties.owner_id = ?", ownerID).
			Order("booking_requests.created_at desc").
			Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking requests"})
			return
		}

		c.JSON(http.StatusOK, requests)
	}
}

// UpdateBookingRequestStatus lets an owner accept or decline a request that
// targets one of their own listings.
func UpdateBookingRequestStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.GetUint(middlewares.ContextUserID)

		var input struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Status != models.BookingAccepted && input.Status != models.BookingDeclined {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be accepted or declined"})
			return
		}

		var request models.BookingRequest
		if err := db.Preload("Property").First(&request, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking request not found"})
			return
		}

		if request.Property.OwnerID != ownerID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to update this request"})
			return
		}

		request.Status = input.Status
		if err := db.Save(&request).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Request " + input.Status,
			"request": request,
		})
	}
}
