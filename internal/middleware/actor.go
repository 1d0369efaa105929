package middleware

import (
	"net/http"
	"strconv"

	"carrental/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// ActorHeader carries the explicit actor identity. There is no session
// model: privileged operations are parameterized by this id and the
// authorization gate re-resolves the user on every call.
const ActorHeader = "X-USER-ID"

const actorKey = "actor_id"

// Actor parses the actor header, when present, into the request context.
// It never rejects a request on its own; handlers that need an actor
// call RequireActorID.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader(ActorHeader); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
				c.Set(actorKey, id)
			}
		}
		c.Next()
	}
}

// RequireActorID returns the actor id extracted by Actor, writing a 400
// response when the header was missing or malformed.
func RequireActorID(c *gin.Context) (int64, bool) {
	id := c.GetInt64(actorKey)
	if id <= 0 {
		response.Error(c, http.StatusBadRequest, "MISSING_ACTOR", ActorHeader+" header is required")
		return 0, false
	}
	return id, true
}
