package restaurantserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	apierrors "github.com/Apurer/go-gin-restaurant-api/internal/shared/errors"
	"github.com/Apurer/go-gin-restaurant-api/internal/shared/validation"
)

var responder = apierrors.NewApplicationResponder("")

// respondError renders err as a problem document.
func respondError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	responder.RespondError(c, err)
}

func respondBadRequest(c *gin.Context, detail string) {
	responder.BadRequest(c, detail)
}

// respondMessage answers successful deletions.
func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// parseIDParam reads a positive integer path parameter. It answers 400 itself on failure.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := validation.ParseID(name, c.Param(name))
	if err != nil {
		respondError(c, err)
		return 0, false
	}
	return id, true
}

// bindPayload decodes a JSON object or an urlencoded form into a Payload.
// An empty body decodes to an empty payload so field checks report what is missing.
func bindPayload(c *gin.Context) (validation.Payload, bool) {
	payload := validation.Payload{}
	switch c.ContentType() {
	case binding.MIMEPOSTForm:
		if err := c.Request.ParseForm(); err != nil {
			respondBadRequest(c, "malformed form body")
			return nil, false
		}
		for key, values := range c.Request.PostForm {
			if len(values) > 0 {
				payload[key] = values[0]
			}
		}
		return payload, true
	}
	if c.Request.Body == nil {
		return payload, true
	}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return validation.Payload{}, true
		}
		respondBadRequest(c, "request body must be a JSON object")
		return nil, false
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		respondBadRequest(c, "request body must hold a single JSON object")
		return nil, false
	}
	return payload, true
}

func queryValue(c *gin.Context, key string) (string, bool) {
	value, ok := c.GetQuery(key)
	return strings.TrimSpace(value), ok
}
