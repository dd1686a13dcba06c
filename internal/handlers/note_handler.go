package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/services"
)

// NoteHandler handles client interaction notes
type NoteHandler struct {
	noteService services.NoteServicer
}

// NewNoteHandler creates a new NoteHandler
func NewNoteHandler(noteService services.NoteServicer) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// NoteRequest represents the request body for adding or editing a note
type NoteRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

// ListNotes handles listing a client's notes
// @Summary     List notes
// @Description Get a client's notes, newest first
// @Tags        notes
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Client ID"
// @Success     200 {object} map[string][]models.Note "Notes keyed by notes"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{id}/notes [get]
func (h *NoteHandler) ListNotes(c *gin.Context) {
	clientID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	notes, err := h.noteService.GetClientNotes(clientID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

// AddNote handles adding a note to a client
// @Summary     Add note
// @Description Log an interaction. The client's last contact moves to now.
// @Tags        notes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string      true "Client ID"
// @Param       request body NoteRequest true "Note"
// @Success     201 {object} models.Note
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{id}/notes [post]
func (h *NoteHandler) AddNote(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	clientID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	note, err := h.noteService.AddNote(actor, clientID, req.Content)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

// UpdateNote handles editing a note
// @Summary     Update note
// @Tags        notes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string      true "Note ID"
// @Param       request body NoteRequest true "Note"
// @Success     200 {object} models.Note
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Note not found"
// @Router      /notes/{id} [put]
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	note, err := h.noteService.UpdateNote(id, req.Content)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// DeleteNote handles deleting a note
// @Summary     Delete note
// @Tags        notes
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Note ID"
// @Success     200 {object} MessageResponse
// @Failure     404 {object} ErrorResponse "Note not found"
// @Router      /notes/{id} [delete]
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.noteService.DeleteNote(id); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Note deleted successfully"})
}
