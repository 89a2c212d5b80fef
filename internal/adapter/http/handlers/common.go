package handlers

import (
	"net/http"
	"strings"

	"agencia_maker/internal/usecase"
	"agencia_maker/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderClientSession identifies a client tab for request supersession.
const HeaderClientSession = "X-Client-Session"

const ticketKey = "request_ticket"

var (
	errInvalidRequest    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errRequestSuperseded = pkg.NewDomainErrorSimple("REQUEST_SUPERSEDED", "A newer request from this session replaced this one", http.StatusConflict)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// TrackLatest registers the request with tracker under the client session and
// operation. A later request of the same scope cancels this one's context.
// Requests without the session header are not tracked.
func TrackLatest(tracker *usecase.RequestTracker, operation string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := strings.TrimSpace(c.GetHeader(HeaderClientSession))
		if session == "" {
			c.Next()
			return
		}
		ctx, ticket, release := tracker.Begin(c.Request.Context(), session+":"+operation)
		defer release()
		c.Request = c.Request.WithContext(ctx)
		c.Set(ticketKey, ticket)
		c.Next()
	}
}

// respondLatest writes body unless a newer request of the same scope started,
// in which case the stale result is discarded with 409.
func respondLatest(c *gin.Context, status int, body any) {
	if v, ok := c.Get(ticketKey); ok {
		if ticket, ok := v.(usecase.RequestTicket); ok && !ticket.IsLatest() {
			writeError(c, errRequestSuperseded)
			return
		}
	}
	c.JSON(status, body)
}
