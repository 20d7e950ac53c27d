package controllers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/recipes/suggestions?"+rawQuery, nil)
	return c
}

func TestParseSuggestionQueryDefaults(t *testing.T) {
	q, err := parseSuggestionQuery(testContext(t, ""))
	require.NoError(t, err)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, 0.3, q.MinMatchScore)
	assert.WithinDuration(t, time.Now(), q.ReferenceDate, time.Minute)
}

func TestParseSuggestionQueryValues(t *testing.T) {
	q, err := parseSuggestionQuery(testContext(t, "limit=50&min_match_score=0.75&reference_date=2026-08-29"))
	require.NoError(t, err)
	assert.Equal(t, 50, q.Limit)
	assert.Equal(t, 0.75, q.MinMatchScore)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), q.ReferenceDate)
}

func TestParseSuggestionQueryRejectsBadInput(t *testing.T) {
	cases := []string{
		"limit=0",
		"limit=-3",
		"limit=51",
		"limit=abc",
		"min_match_score=-0.1",
		"min_match_score=1.5",
		"min_match_score=x",
		"reference_date=29-08-2026",
	}
	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			_, err := parseSuggestionQuery(testContext(t, raw))
			assert.Error(t, err)
		})
	}
}

func TestParseSuggestionQueryBoundaryScores(t *testing.T) {
	for _, raw := range []string{"min_match_score=0", "min_match_score=1"} {
		t.Run(raw, func(t *testing.T) {
			_, err := parseSuggestionQuery(testContext(t, raw))
			assert.NoError(t, err)
		})
	}
}

func TestPaginationParams(t *testing.T) {
	c := testContext(t, "skip=-5&limit=500")
	skip, limit := paginationParams(c, 100)
	assert.Equal(t, 0, skip)
	assert.Equal(t, 100, limit)

	c = testContext(t, "skip=20&limit=30")
	skip, limit = paginationParams(c, 100)
	assert.Equal(t, 20, skip)
	assert.Equal(t, 30, limit)
}
