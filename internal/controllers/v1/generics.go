package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/senior-finance/backend/internal/models"
	paramuuid "github.com/senior-finance/backend/internal/uuid"
)

// resourceOptionsDetail answers an OPTIONS request for a single resource
// after verifying that the resource exists.
func resourceOptionsDetail[R models.Transaction | models.Budget | models.Debt](c *gin.Context, resource R, options gin.HandlerFunc) {
	id, err := bindURIID(c, resource)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&resource, id).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	options(c)
}

// bindURIID binds the ID of the resource from the URI. Only debts accept
// the IDs of virtual items.
func bindURIID[R models.Transaction | models.Budget | models.Debt](c *gin.Context, resource R) (paramuuid.UUID, error) {
	if _, ok := any(resource).(models.Debt); ok {
		var uri DebtURIID
		err := c.ShouldBindUri(&uri)
		return uri.ID.UUID, err
	}

	var uri URIID
	err := c.ShouldBindUri(&uri)
	return uri.ID, err
}
