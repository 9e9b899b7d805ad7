package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/ecommerce-api/repositories"
	"github.com/yeremiapane/ecommerce-api/schemas"
	"github.com/yeremiapane/ecommerce-api/utils"
)

var (
	ErrInvalidID   = &CustomError{"Invalid id"}
	ErrInvalidBody = &CustomError{"Request body must be a JSON object"}
	ErrConflict    = &CustomError{"Request conflicts with an existing record"}
)

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

// parseID reads a positive integer path parameter, answering 400 otherwise.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidID)
		return 0, false
	}
	return uint(id), true
}

// queryID reads a positive integer query parameter, answering 400 otherwise.
func queryID(c *gin.Context, name string) (uint, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		utils.RespondError(c, http.StatusBadRequest, &CustomError{"Missing query parameter " + name})
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, &CustomError{"Invalid query parameter " + name})
		return 0, false
	}
	return uint(id), true
}

// loadPayload binds the JSON body and runs it through schema. On failure
// it has already answered 400.
func loadPayload(c *gin.Context, schema schemas.Schema) (schemas.Record, bool) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil || payload == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidBody)
		return nil, false
	}

	record, err := schema.Load(payload)
	if err != nil {
		var verrs schemas.Errors
		if errors.As(err, &verrs) {
			utils.RespondValidation(c, http.StatusBadRequest, verrs)
			return nil, false
		}
		utils.RespondError(c, http.StatusBadRequest, err)
		return nil, false
	}
	return record, true
}

// productIDs collects the repeated Product query parameter. Values that
// are not positive integers are dropped like unknown product ids.
func productIDs(c *gin.Context) []uint {
	raw := c.QueryArray("Product")
	ids := make([]uint, 0, len(raw))
	for _, v := range raw {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil || id == 0 {
			utils.InfoLogger.Warnf("Ignoring product id %q", v)
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}

// respondStoreError maps repository errors to status codes.
func respondStoreError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, &CustomError{notFoundMsg})
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		utils.ErrorLogger.Warnf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.RespondError(c, http.StatusConflict, ErrConflict)
	default:
		utils.ErrorLogger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
