package controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// paginationParams reads skip/limit query params, clamping limit to maxLimit.
func paginationParams(c *gin.Context, maxLimit int) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	if skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 {
		limit = 100
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return skip, limit
}

func idParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id")
	}
	return uint(id), nil
}

type suggestionQuery struct {
	Limit         int
	MinMatchScore float64
	ReferenceDate time.Time
}

// parseSuggestionQuery validates the suggestion endpoint's query params:
// limit defaults to 10 (max 50), min_match_score defaults to 0.3 and must
// lie in [0,1], reference_date defaults to today.
func parseSuggestionQuery(c *gin.Context) (suggestionQuery, error) {
	q := suggestionQuery{Limit: 10, MinMatchScore: 0.3, ReferenceDate: time.Now()}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 || limit > 50 {
			return q, fmt.Errorf("limit must be an integer in (0,50]")
		}
		q.Limit = limit
	}

	if raw := c.Query("min_match_score"); raw != "" {
		score, err := strconv.ParseFloat(raw, 64)
		if err != nil || score < 0 || score > 1 {
			return q, fmt.Errorf("min_match_score must be a number in [0,1]")
		}
		q.MinMatchScore = score
	}

	if raw := c.Query("reference_date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return q, fmt.Errorf("reference_date must be YYYY-MM-DD")
		}
		q.ReferenceDate = date
	}

	return q, nil
}
