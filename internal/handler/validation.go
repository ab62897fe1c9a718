package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON binds the request body into obj. On failure it writes the 400
// response carrying the full list of field-level violations and returns
// false; the caller must stop handling the request.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid input",
			"errors":  validationErrors(err),
		})
		return false
	}
	return true
}

// validationErrors flattens a binding failure into one entry per violated
// field. Non-validator errors (malformed JSON, wrong types) become a single
// entry.
func validationErrors(err error) []gin.H {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []gin.H{{"message": err.Error()}}
	}

	out := make([]gin.H, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, gin.H{
			"field":   strings.ToLower(fe.Field()[:1]) + fe.Field()[1:],
			"message": fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
		})
	}
	return out
}

// pathID parses an integer id path parameter. On failure it writes the 400
// response and returns false.
func pathID(c *gin.Context, param, label string) (int, bool) {
	raw := c.Param(param)
	id, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + label + " ID"})
		return 0, false
	}
	return id, true
}
