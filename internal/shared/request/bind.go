package request

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"
)

// BindStrict decodes the JSON request body into dest, rejecting unknown
// fields. Payloads carrying fields outside the DTO schema fail validation
// instead of being silently dropped.
func BindStrict(c *gin.Context, dest interface{}) error {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
