package handlers

import (
	"strconv"

	"github.com/Himon-SYNCRAFT/taskplus-api/internal/apierrors"
	"github.com/Himon-SYNCRAFT/taskplus-api/internal/query"
	"github.com/gin-gonic/gin"
)

// bindObject decodes the request body into a JSON object. Anything else
// (arrays, scalars, malformed JSON) is rejected uniformly as a 400.
func bindObject(c *gin.Context) (map[string]any, bool) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return nil, false
	}
	return body, true
}

// queryValues flattens the query string into the single-value map the query
// rule sets validate.
func queryValues(c *gin.Context) map[string]any {
	out := map[string]any{}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			out[key] = values[0]
		}
	}
	return out
}

// pathID parses a numeric path parameter, answering 400 on failure.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// respondQueryError maps a query builder failure to a response. Contract
// violations are the client's fault; anything else is a store error.
func respondQueryError(c *gin.Context, err error) {
	if query.IsClientError(err) {
		apierrors.BadRequest(c, err.Error())
		return
	}
	apierrors.InternalError(c, "")
}
