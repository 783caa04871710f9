package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/notegate/backend/internal/model"
	"github.com/notegate/backend/internal/service"
)

type NoteHandler struct {
	svc *service.NoteService
}

func NewNoteHandler(svc *service.NoteService) *NoteHandler {
	return &NoteHandler{svc: svc}
}

// ListPublic godoc
// @Summary List public notes
// @Tags notes
// @Produce json
// @Success 200 {array} model.Note
// @Failure 500 {object} model.ErrorResponse
// @Router /contents [get]
func (h *NoteHandler) ListPublic(c *gin.Context) {
	notes, err := h.svc.ListPublic(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// GetPublicByID godoc
// @Summary Get a public note
// @Tags notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} model.Note
// @Failure 404 {object} model.ErrorResponse
// @Router /contents/{id} [get]
func (h *NoteHandler) GetPublicByID(c *gin.Context) {
	id, ok := noteID(c)
	if !ok {
		return
	}

	note, err := h.svc.GetPublicByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// ListMine godoc
// @Summary List the authenticated user's notes
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Note
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /admin/contents [get]
func (h *NoteHandler) ListMine(c *gin.Context) {
	notes, err := h.svc.ListOwnedBy(c.Request.Context(), Identity(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// Create godoc
// @Summary Create a note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateNoteRequest true "Note payload"
// @Success 201 {object} model.CreateNoteResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /admin/contents [post]
func (h *NoteHandler) Create(c *gin.Context) {
	var req model.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request body"})
		return
	}

	id, err := h.svc.Create(c.Request.Context(), Identity(c), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.CreateNoteResponse{
		Message: "Note created successfully",
		ID:      id,
	})
}

// GetByID godoc
// @Summary Get a note visible to the authenticated user
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} model.Note
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /admin/contents/{id} [get]
func (h *NoteHandler) GetByID(c *gin.Context) {
	id, ok := noteID(c)
	if !ok {
		return
	}

	note, err := h.svc.GetVisibleByID(c.Request.Context(), id, Identity(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// Update godoc
// @Summary Update an owned note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Param request body model.UpdateNoteRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /admin/contents/{id} [put]
func (h *NoteHandler) Update(c *gin.Context) {
	id, ok := noteID(c)
	if !ok {
		return
	}

	var req model.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.svc.Update(c.Request.Context(), id, Identity(c), req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note updated successfully"})
}

// Delete godoc
// @Summary Delete an owned note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /admin/contents/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	id, ok := noteID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, Identity(c)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}

// Stats godoc
// @Summary Note counts for the authenticated user
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.NoteStats
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /admin/stats [get]
func (h *NoteHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context(), Identity(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func noteID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid note id"})
		return 0, false
	}
	return id, true
}
