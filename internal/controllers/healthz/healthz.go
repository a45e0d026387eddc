// Package healthz reports if the backend can serve requests.
package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/senior-finance/backend/internal/httputil"
	"github.com/senior-finance/backend/internal/models"
)

// RegisterRoutes registers the routes for the healthz endpoint.
func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

type Response struct {
	Error *string `json:"error" example:"the database cannot be accessed"` // The error, if any occurred
}

// Options returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns the application health
//
//	@Summary		Get health
//	@Description	Returns 204 if the database can be reached. Otherwise, 500 and the error
//	@Tags			General
//	@Produce		json
//	@Success		204
//	@Failure		500	{object}	Response
//	@Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}

	if err != nil {
		log.Error().Err(err).Msg("health check")

		e := "the database cannot be accessed"
		c.JSON(http.StatusInternalServerError, Response{Error: &e})
		return
	}

	c.Status(http.StatusNoContent)
}
