package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cemerttu/backend-store-master/services"
)

// MaxListLimit caps the number of products a single list request can ask for.
const MaxListLimit = 100

// DefaultSort orders catalog lists newest-first when no sort is given.
const DefaultSort = "newest"

// RequestValidator parses and validates query parameters.
type RequestValidator struct{}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{}
}

// ParseListParams validates and parses the catalog list filters.
func (rv *RequestValidator) ParseListParams(c *gin.Context) (services.ListParams, error) {
	params := services.ListParams{
		Category: strings.TrimSpace(c.Query("category")),
		Gender:   strings.TrimSpace(c.Query("gender")),
		Search:   strings.TrimSpace(c.Query("search")),
		Sort:     DefaultSort,
	}

	if sortParam := strings.ToLower(strings.TrimSpace(c.Query("sort"))); sortParam != "" {
		if !isSupportedSort(sortParam) {
			return services.ListParams{}, errors.New("invalid sort value")
		}
		params.Sort = sortParam
	}

	if limitStr := strings.TrimSpace(c.Query("limit")); limitStr != "" {
		limit, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil || limit < 1 {
			return services.ListParams{}, errors.New("invalid limit value")
		}
		if limit > MaxListLimit {
			limit = MaxListLimit
		}
		params.Limit = limit
	}

	return params, nil
}

func isSupportedSort(sortParam string) bool {
	switch sortParam {
	case "price_asc", "price_desc", "newest", "rating":
		return true
	default:
		return false
	}
}
