package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/lilfrek386-a11y/library/internal/domains/book"
	"github.com/lilfrek386-a11y/library/internal/shared/request"
	"github.com/lilfrek386-a11y/library/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// GetByID - GET /books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, b)
}

// GetAll - GET /books/
func (h *BookHandler) GetAll(c *gin.Context) {
	books, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, books)
}

// Create - POST /books/
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
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

// Update - PUT /books/:id (full replace)
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req book.UpdateBookRequest
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

// UpdatePartial - PATCH /books/:id
func (h *BookHandler) UpdatePartial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req book.UpdateBookPartialRequest
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

// Delete - DELETE /books/:id
func (h *BookHandler) Delete(c *gin.Context) {
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

// DeleteAll - DELETE /books/
func (h *BookHandler) DeleteAll(c *gin.Context) {
	if err := h.service.DeleteAll(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	response.NoContent(c)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.UnprocessableEntity(c, "book id must be an integer", nil)
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	status := book.ToHTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Msg("Book operation failed")
		message = "internal storage error"
	}
	response.ErrorResponse(c, status, book.ToErrorCode(err), message)
}
