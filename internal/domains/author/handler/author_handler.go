package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/lilfrek386-a11y/library/internal/domains/author"
	"github.com/lilfrek386-a11y/library/internal/shared/request"
	"github.com/lilfrek386-a11y/library/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// GetByID - GET /authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, a)
}

// GetAll - GET /authors/
func (h *AuthorHandler) GetAll(c *gin.Context) {
	authors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, authors)
}

// Create - POST /authors/
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := request.BindStrict(c, &req); err != nil {
		response.UnprocessableEntity(c, err.Error(), nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "validation failed", err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, created)
}

// Update - PUT /authors/:id (full replace)
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req author.UpdateAuthorRequest
	if err := request.BindStrict(c, &req); err != nil {
		response.UnprocessableEntity(c, err.Error(), nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "validation failed", err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, updated)
}

// UpdatePartial - PATCH /authors/:id
func (h *AuthorHandler) UpdatePartial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req author.UpdateAuthorPartialRequest
	if err := request.BindStrict(c, &req); err != nil {
		response.UnprocessableEntity(c, err.Error(), nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "validation failed", err)
		return
	}

	updated, err := h.service.UpdatePartial(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, updated)
}

// Delete - DELETE /authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.NoContent(c)
}

// DeleteAll - DELETE /authors/
func (h *AuthorHandler) DeleteAll(c *gin.Context) {
	if err := h.service.DeleteAll(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	response.NoContent(c)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.UnprocessableEntity(c, "author id must be an integer", nil)
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	status := author.ToHTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Msg("Author operation failed")
		message = "internal storage error"
	}
	response.ErrorResponse(c, status, author.ToErrorCode(err), message)
}
