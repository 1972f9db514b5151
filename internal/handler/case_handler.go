package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"klagedok/internal/service"
)

// CaseHandler handles case read endpoints.
type CaseHandler struct {
	caseService service.CaseService
}

// NewCaseHandler creates a new CaseHandler.
func NewCaseHandler(caseService service.CaseService) *CaseHandler {
	return &CaseHandler{caseService: caseService}
}

// Get godoc
// @Summary      Get a case
// @Description  Returns one case with its classified status
// @Tags         cases
// @Produce      json
// @Param        id   path      string  true  "Case ID"
// @Success      200  {object}  APIResponse
// @Failure      404  {object}  APIResponse
// @Security     BearerAuth
// @Router       /cases/{id} [get]
func (h *CaseHandler) Get(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid case id")
		return
	}

	view, err := h.caseService.GetByID(c.Request.Context(), caseID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, view)
}

// List godoc
// @Summary      List cases
// @Description  Returns a paginated list of cases with classified statuses
// @Tags         cases
// @Produce      json
// @Param        offset  query     int  false  "Offset"  default(0)
// @Param        limit   query     int  false  "Limit"   default(50)
// @Success      200     {object}  APIResponse
// @Security     BearerAuth
// @Router       /cases [get]
func (h *CaseHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	views, total, err := h.caseService.List(c.Request.Context(), offset, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondPaginated(c, views, PagMeta{Total: total, Offset: offset, Limit: limit})
}
