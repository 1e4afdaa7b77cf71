package middleware

import (
	"net/http"
	"strings"

	"travel-broker/internal/handler/httperr"
	"travel-broker/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ActorHeader carries the acting user id; the upstream gateway authenticates the caller and sets it.
const ActorHeader = "X-User-ID"

const ctxUserIDKey = "user_id"

var (
	errActorMissing = errs.New("actor header missing")
	errActorInvalid = errs.New("actor header is not a uuid")
)

func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(ActorHeader))
		if raw == "" {
			httperr.AbortWithCode(c, http.StatusUnauthorized, errActorMissing, httperr.CodeActorRequired, "Acting user required")
			return
		}
		userID, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errActorInvalid), "Invalid acting user", nil)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
