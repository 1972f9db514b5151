package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"klagedok/internal/domain"
	"klagedok/internal/service"
)

// DocumentHandler handles document mutation and read endpoints. Every
// mutation runs through the access-policy gate inside the service.
type DocumentHandler struct {
	docService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(docService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{docService: docService}
}

// Create godoc
// @Summary      Create a document
// @Description  Creates a document in progress on a case
// @Tags         documents
// @Accept       json
// @Produce      json
// @Success      201  {object}  APIResponse
// @Failure      400  {object}  APIResponse
// @Failure      403  {object}  APIResponse
// @Security     BearerAuth
// @Router       /documents [post]
func (h *DocumentHandler) Create(c *gin.Context) {
	var req struct {
		CaseID     string  `json:"case_id" binding:"required,uuid"`
		Name       string  `json:"name" binding:"required"`
		Kind       string  `json:"kind" binding:"required"`
		Variant    string  `json:"variant" binding:"required"`
		TemplateID *string `json:"template_id"`
		ParentID   *string `json:"parent_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	actor, err := actorFromContext(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	caseID, _ := uuid.Parse(req.CaseID)
	input := &service.CreateDocumentInput{
		CaseID:     caseID,
		Name:       req.Name,
		Kind:       domain.DocumentKind(req.Kind),
		Variant:    domain.DocumentVariant(req.Variant),
		TemplateID: req.TemplateID,
	}
	if req.ParentID != nil {
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid parent id")
			return
		}
		input.ParentID = &parentID
	}

	doc, err := h.docService.Create(c.Request.Context(), actor, input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondCreated(c, doc)
}

// Get godoc
// @Summary      Get a document
// @Tags         documents
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  APIResponse
// @Failure      404  {object}  APIResponse
// @Security     BearerAuth
// @Router       /documents/{id} [get]
func (h *DocumentHandler) Get(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}

	doc, err := h.docService.GetByID(c.Request.Context(), docID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, doc)
}

// ListByCase godoc
// @Summary      List documents on a case
// @Tags         documents
// @Produce      json
// @Param        id   path      string  true  "Case ID"
// @Success      200  {object}  APIResponse
// @Security     BearerAuth
// @Router       /cases/{id}/documents [get]
func (h *DocumentHandler) ListByCase(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid case id")
		return
	}

	docs, err := h.docService.ListByCase(c.Request.Context(), caseID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, docs)
}

// UploadContent godoc
// @Summary      Upload document content
// @Description  Uploads file content for an uploaded-variant document
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "Document ID"
// @Param        file  formData  file    true  "File content"
// @Success      200   {object}  APIResponse
// @Failure      403   {object}  APIResponse
// @Security     BearerAuth
// @Router       /documents/{id}/content [put]
func (h *DocumentHandler) UploadContent(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}

	actor, err := actorFromContext(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "missing file")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "could not open file")
		return
	}
	defer file.Close()

	input := &service.UploadContentInput{
		DocumentID:  docID,
		Body:        file,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}
	if err := h.docService.UploadContent(c.Request.Context(), actor, input); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, gin.H{"document_id": docID})
}

// Rename godoc
// @Summary      Rename a document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  APIResponse
// @Failure      403  {object}  APIResponse
// @Security     BearerAuth
// @Router       /documents/{id}/name [patch]
func (h *DocumentHandler) Rename(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	actor, err := actorFromContext(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if err := h.docService.Rename(c.Request.Context(), actor, docID, req.Name); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, gin.H{"document_id": docID, "name": req.Name})
}

// ChangeKind godoc
// @Summary      Change document kind
// @Description  Changes a smart document between letter, note and decision
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  APIResponse
// @Failure      403  {object}  APIResponse
// @Security     BearerAuth
// @Router       /documents/{id}/kind [patch]
func (h *DocumentHandler) ChangeKind(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}

	var req struct {
		Kind string `json:"kind" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	actor, err := actorFromContext(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if err := h.docService.ChangeKind(c.Request.Context(), actor, docID, domain.DocumentKind(req.Kind)); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, gin.H{"document_id": docID, "kind": req.Kind})
}

// Remove godoc
// @Summary      Delete a document
// @Tags         documents
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  APIResponse
// @Failure      403  {object}  APIResponse
// @Security     BearerAuth
// @Router       /documents/{id} [delete]
func (h *DocumentHandler) Remove(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}

	actor, err := actorFromContext(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if err := h.docService.Remove(c.Request.Context(), actor, docID); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, gin.H{"document_id": docID})
}

// Finish godoc
// @Summary      Finish a document
// @Description  Marks a document as finished; finished documents can no longer change
// @Tags         documents
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  APIResponse
// @Failure      403  {object}  APIResponse
// @Security     BearerAuth
// @Router       /documents/{id}/finish [post]
func (h *DocumentHandler) Finish(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}

	actor, err := actorFromContext(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if err := h.docService.Finish(c.Request.Context(), actor, docID); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, gin.H{"document_id": docID, "finished": true})
}
