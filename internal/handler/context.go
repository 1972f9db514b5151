package handler

import (
	"github.com/gin-gonic/gin"

	"klagedok/internal/domain"
	"klagedok/internal/middleware"
	"klagedok/internal/service"
)

// actorFromContext rebuilds the acting user from the authenticated claims.
// Policy evaluation only needs the user's ID and capabilities, both of which
// are carried in the token, so no repository roundtrip is needed per request.
func actorFromContext(c *gin.Context) (service.Actor, error) {
	val, exists := c.Get(middleware.ContextKeyClaims)
	if !exists {
		return service.Actor{}, domain.ErrUnauthorized
	}
	claims, ok := val.(*service.Claims)
	if !ok {
		return service.Actor{}, domain.ErrUnauthorized
	}
	return service.Actor{
		User: &domain.User{
			ID:           claims.UserID,
			Email:        claims.Email,
			Capabilities: claims.Capabilities,
		},
	}, nil
}
