package controllers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/middlewares"
	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/models"
	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/storage"
	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/utils"
)

// listingCachePrefix keys the cached finder search results. Every property
// write invalidates the whole prefix.
const listingCachePrefix = "listings"

// propertyInput is the full listing form. Bedrooms and RentPerMonth are
// pointers so that an explicit 0 passes "required" while a missing field
// does not.
type propertyInput struct {
	Title            string   `form:"title" json:"title" binding:"required"`
	Description      string   `form:"description" json:"description"`
	Address          string   `form:"address" json:"address" binding:"required"`
	HouseType        string   `form:"house_type" json:"house_type" binding:"required"`
	Bedrooms         *int     `form:"bedrooms" json:"bedrooms" binding:"required,gte=0"`
	RentPerMonth     *float64 `form:"rent_per_month" json:"rent_per_month" binding:"required,gte=0"`
	HasWaterFacility bool     `form:"has_water_facility" json:"has_water_facility"`
	MeterType        string   `form:"meter_type" json:"meter_type"`
	Latitude         *float64 `form:"latitude" json:"latitude"`
	Longitude        *float64 `form:"longitude" json:"longitude"`
	IsAvailable      *bool    `form:"is_available" json:"is_available"`
}

// saveListingImage stores an uploaded file under a per-owner key and returns
// its public URL.
func saveListingImage(store storage.Store, ownerID uint, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", fmt.Errorf("only .jpg, .jpeg, and .png files are allowed")
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := fmt.Sprintf("properties/%d/%s%s", ownerID, uuid.NewString(), ext)
	return store.Save(key, src)
}

// CreateProperty inserts a new listing for the logged-in owner. An optional
// image part is stored first; if the insert then fails the stored file is
// removed so no orphan blobs accumulate.
func CreateProperty(db *gorm.DB, store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.GetUint(middlewares.ContextUserID)

		var input propertyInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !models.ValidHouseType(input.HouseType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid house type"})
			return
		}

		var imageURL *string
		if file, err := c.FormFile("image"); err == nil {
			url, err := saveListingImage(store, ownerID, file)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			imageURL = &url
		}

		isAvailable := true
		if input.IsAvailable != nil {
			isAvailable = *input.IsAvailable
		}

		property := models.Property{
			OwnerID:          ownerID,
			Title:            input.Title,
			Description:      input.Description,
			Address:          input.Address,
			HouseType:        input.HouseType,
			Bedrooms:         *input.Bedrooms,
			RentPerMonth:     *input.RentPerMonth,
			HasWaterFacility: input.HasWaterFacility,
			MeterType:        input.MeterType,
			Latitude:         input.Latitude,
			Longitude:        input.Longitude,
			IsAvailable:      isAvailable,
			ImageURL:         imageURL,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		}

		if err := db.Create(&property).Error; err != nil {
			if imageURL != nil {
				store.Remove(*imageURL)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property"})
			return
		}

		utils.InvalidatePrefix(c.Request.Context(), listingCachePrefix)

		c.JSON(http.StatusCreated, gin.H{"property": property})
	}
}

// UpdateProperty is a full-record replace keyed by the path id. It never
// creates a new row; an unknown id is 404 and someone else's row is 403.
func UpdateProperty(db *gorm.DB, store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.GetUint(middlewares.ContextUserID)

		var property models.Property
		if err := db.First(&property, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}

		if property.OwnerID != ownerID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to update this property"})
			return
		}

		var input propertyInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !models.ValidHouseType(input.HouseType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid house type"})
			return
		}

		oldImageURL := property.ImageURL
		newImageURL := oldImageURL
		uploaded := false
		if file, err := c.FormFile("image"); err == nil {
			url, err := saveListingImage(store, ownerID, file)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			newImageURL = &url
			uploaded = true
		}

		isAvailable := property.IsAvailable
		if input.IsAvailable != nil {
			isAvailable = *input.IsAvailable
		}

		updates := map[string]interface{}{
			"title":              input.Title,
			"description":        input.Description,
			"address":            input.Address,
			"house_type":         input.HouseType,
			"bedrooms":           *input.Bedrooms,
			"rent_per_month":     *input.RentPerMonth,
			"has_water_facility": input.HasWaterFacility,
			"meter_type":         input.MeterType,
			"latitude":           input.Latitude,
			"longitude":          input.Longitude,
			"is_available":       isAvailable,
			"image_url":          newImageURL,
			"updated_at":         time.Now(),
		}

		if err := db.Model(&property).Updates(updates).Error; err != nil {
			if uploaded {
				store.Remove(*newImageURL)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update property"})
			return
		}

		if uploaded && oldImageURL != nil {
			// Best effort: the row already points at the new file.
			store.Remove(*oldImageURL)
		}

		if err := db.First(&property, property.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated property"})
			return
		}

		utils.InvalidatePrefix(c.Request.Context(), listingCachePrefix)

		c.JSON(http.StatusOK, gin.H{"property": property})
	}
}

// DeleteProperty hard-deletes a listing, its gallery rows and its booking
// requests, then best-effort removes the stored files.
func DeleteProperty(db *gorm.DB, store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.GetUint(middlewares.ContextUserID)

		var property models.Property
		if err := db.Preload("Images").First(&property, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}

		if property.OwnerID != ownerID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to delete this property"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("property_id = ?", property.ID).Delete(&models.BookingRequest{}).Error; err != nil {
				return err
			}
			if err := tx.Where("property_id = ?", property.ID).Delete(&models.PropertyImage{}).Error; err != nil {
				return err
			}
			return tx.Delete(&property).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property"})
			return
		}

		if property.ImageURL != nil {
			store.Remove(*property.ImageURL)
		}
		for _, img := range property.Images {
			store.Remove(img.ImageURL)
		}

		utils.InvalidatePrefix(c.Request.Context(), listingCachePrefix)

		c.JSON(http.StatusOK, gin.H{"message": "Property deleted successfully"})
	}
}

// GetOwnerProperties lists only the logged-in owner's rows, newest first.
func GetOwnerProperties(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.GetUint(middlewares.ContextUserID)

		var properties []models.Property
		if err := db.Preload("Images").
			Where("owner_id = ?", ownerID).
			Order("created_at desc").
			Find(&properties).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch properties"})
			return
		}

		c.JSON(http.StatusOK, properties)
	}
}
