package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifestream/backend/internal/interfaces/http/dto"
)

type registrationBody struct {
	Email      string `json:"email" binding:"required,email"`
	BloodGroup string `json:"blood_group" binding:"required,bloodgroup"`
}

func setupValidationRouter() *gin.Engine {
	SetupValidator()

	engine := gin.New()
	engine.POST("/test", func(c *gin.Context) {
		var body registrationBody
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return engine
}

func TestBloodGroupValidation(t *testing.T) {
	engine := setupValidationRouter()

	t.Run("accepts valid blood group", func(t *testing.T) {
		body := `{"email": "donor@example.com", "blood_group": "AB-"}`
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects invalid blood group with field detail", func(t *testing.T) {
		body := `{"email": "donor@example.com", "blood_group": "C+"}`
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.Len(t, resp.Error.Details, 1)
		// JSON tag name, not the Go field name
		assert.Equal(t, "blood_group", resp.Error.Details[0].Field)
	})

	t.Run("reports missing required fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Len(t, resp.Error.Details, 2)
	})
}
