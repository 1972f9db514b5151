package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"klagedok/internal/domain"
	"klagedok/internal/service"
)

// AccessHandler exposes the access-policy evaluator over HTTP.
type AccessHandler struct {
	accessService service.AccessService
}

// NewAccessHandler creates a new AccessHandler.
func NewAccessHandler(accessService service.AccessService) *AccessHandler {
	return &AccessHandler{accessService: accessService}
}

// Evaluate godoc
// @Summary      Evaluate document access
// @Description  Explains whether the acting user may perform an action on a document
// @Tags         access
// @Produce      json
// @Param        id      path      string  true  "Document ID"
// @Param        action  query     string  true  "Action"  Enums(create, write, remove, change-type, rename, finish)
// @Success      200     {object}  APIResponse
// @Failure      400     {object}  APIResponse
// @Security     BearerAuth
// @Router       /documents/{id}/access [get]
func (h *AccessHandler) Evaluate(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}

	action := domain.DocumentAction(c.Query("action"))
	if !validAction(action) {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "unknown action")
		return
	}

	actor, err := actorFromContext(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	decision, err := h.accessService.CanPerform(c.Request.Context(), actor.User, docID, action)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, decision)
}

// Writers godoc
// @Summary      List permitted writers
// @Description  Resolves, per document on the case, which users may currently write to it
// @Tags         access
// @Produce      json
// @Param        id   path      string  true  "Case ID"
// @Success      200  {object}  APIResponse
// @Failure      404  {object}  APIResponse
// @Security     BearerAuth
// @Router       /cases/{id}/writers [get]
func (h *AccessHandler) Writers(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid case id")
		return
	}

	writers, err := h.accessService.PermittedWriters(c.Request.Context(), caseID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, writers)
}

func validAction(action domain.DocumentAction) bool {
	for _, a := range domain.Actions {
		if a == action {
			return true
		}
	}
	return false
}
