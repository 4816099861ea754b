package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/middlewares"
	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/models"
	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/storage"
	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/utils"
)

// AddPropertyImage appends a gallery image to one of the owner's listings.
// Promoting it to primary demotes the previous primary in the same
// transaction, so a property never holds two primaries.
func AddPropertyImage(db *gorm.DB, store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.GetUint(middlewares.ContextUserID)

		var property models.Property
		if err := db.First(&property, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		if property.OwnerID != ownerID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to modify this property"})
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
			return
		}

		url, err := saveListingImage(store, ownerID, file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		isPrimary := c.PostForm("is_primary") == "true"

		image := models.PropertyImage{
			PropertyID: property.ID,
			ImageURL:   url,
			IsPrimary:  isPrimary,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if isPrimary {
				if err := tx.Model(&models.PropertyImage{}).
					Where("property_id = ? AND is_primary = ?", property.ID, true).
					Update("is_primary", false).Error; err != nil {
					return err
				}
			}
			return tx.Create(&image).Error
		})
		if err != nil {
			store.Remove(url)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}

		utils.InvalidatePrefix(c.Request.Context(), listingCachePrefix)

		c.JSON(http.StatusCreated, gin.H{"image": image})
	}
}

// SetPrimaryImage promotes an existing gallery image.
func SetPrimaryImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.GetUint(middlewares.ContextUserID)

		var property models.Property
		if err := db.First(&property, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		if property.OwnerID != ownerID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to modify this property"})
			return
		}

		var image models.PropertyImage
		if err := db.Where("id = ? AND property_id = ?", c.Param("imageId"), property.ID).
			First(&image).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.PropertyImage{}).
				Where("property_id = ? AND is_primary = ?", property.ID, true).
				Update("is_primary", false).Error; err != nil {
				return err
			}
			return tx.Model(&image).Update("is_primary", true).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update image"})
			return
		}

		utils.InvalidatePrefix(c.Request.Context(), listingCachePrefix)

		c.JSON(http.StatusOK, gin.H{"message": "Primary image updated"})
	}
}

// DeletePropertyImage removes a gallery row and its stored file.
func DeletePropertyImage(db *gorm.DB, store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.GetUint(middlewares.ContextUserID)

		var property models.Property
		if err := db.First(&property, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		if property.OwnerID != ownerID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to modify this property"})
			return
		}

		var image models.PropertyImage
		if err := db.Where("id = ? AND property_id = ?", c.Param("imageId"), property.ID).
			First(&image).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}

		if err := db.Delete(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
			return
		}

		store.Remove(image.ImageURL)

		utils.InvalidatePrefix(c.Request.Context(), listingCachePrefix)

		c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
	}
}
