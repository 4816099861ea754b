package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/models"
	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/utils"
)

const listingCacheTTL = 5 * time.Minute

// BrowseProperties returns every available listing, optionally narrowed by
// the search filters. Unavailable rows never appear, whatever the filters
// say. Results are cached per filter set.
func BrowseProperties(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := map[string]string{
			"location":   c.Query("location"),
			"min_rent":   c.Query("min_rent"),
			"max_rent":   c.Query("max_rent"),
			"bedrooms":   c.Query("bedrooms"),
			"house_type": c.Query("house_type"),
		}

		cacheKey := utils.GenerateQueryCacheKey(listingCachePrefix, filters)
		var cached []models.Property
		if hit, err := utils.GetCached(c.Request.Context(), cacheKey, &cached); err == nil && hit {
			c.JSON(http.StatusOK, cached)
			return
		}

		query := db.Preload("Images").Where("is_available = ?", true)

		if location := filters["location"]; location != "" {
			query = query.Where("LOWER(address) LIKE LOWER(?)", "%"+location+"%")
		}
		if minRent := filters["min_rent"]; minRent != "" {
			if min, err := strconv.ParseFloat(minRent, 64); err == nil {
				query = query.Where("rent_per_month >= ?", min)
			}
		}
		if maxRent := filters["max_rent"]; maxRent != "" {
			if max, err := strconv.ParseFloat(maxRent, 64); err == nil {
				query = query.Where("rent_per_month <= ?", max)
			}
		}
		if bedrooms := filters["bedrooms"]; bedrooms != "" {
			if num, err := strconv.Atoi(bedrooms); err == nil {
				// The search form caps out at "4+".
				if num >= 4 {
					query = query.Where("bedrooms >= ?", 4)
				} else {
					query = query.Where("bedrooms = ?", num)
				}
			}
		}
		if houseType := filters["house_type"]; houseType != "" {
			query = query.Where("house_type = ?", houseType)
		}

		var properties []models.Property
		if err := query.Order("created_at desc").Find(&properties).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch properties"})
			return
		}

		utils.SetCached(c.Request.Context(), cacheKey, properties, listingCacheTTL)

		c.JSON(http.StatusOK, properties)
	}
}

// GetProperty is the public listing detail with its gallery preloaded.
func GetProperty(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var property models.Property
		if err := db.Preload("Images").First(&property, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}

		c.JSON(http.StatusOK, property)
	}
}
