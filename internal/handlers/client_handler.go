package handlers

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
	"wealthdesk/internal/services"
)

// maxImportBytes caps the size of an uploaded client CSV.
const maxImportBytes = 5 << 20

// ClientHandler handles client-related requests
type ClientHandler struct {
	clientService services.ClientServicer
	auditService  services.AuditServicer
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService services.ClientServicer, auditService services.AuditServicer) *ClientHandler {
	return &ClientHandler{clientService: clientService, auditService: auditService}
}

// CreateClientRequest represents the request body for creating a client
type CreateClientRequest struct {
	Name    string               `json:"name" binding:"required,max=200"`
	Company string               `json:"company" binding:"required,max=200"`
	Email   string               `json:"email" binding:"required,email"`
	Phone   string               `json:"phone" binding:"max=50"`
	Address string               `json:"address" binding:"max=500"`
	Tags    []string             `json:"tags"`
	Status  models.ClientStatus  `json:"status" binding:"omitempty,client_status" example:"Lead"`
	Segment models.ClientSegment `json:"segment" binding:"client_segment"`
	Owner   string               `json:"owner" binding:"max=100"`
	Notes   string               `json:"notes"`
	DematID string               `json:"demat_id" binding:"max=50"`
}

// UpdateClientRequest represents the request body for updating a client.
// Omitted fields are left unchanged.
type UpdateClientRequest struct {
	Name    *string               `json:"name" binding:"omitempty,max=200"`
	Company *string               `json:"company" binding:"omitempty,max=200"`
	Email   *string               `json:"email" binding:"omitempty,email"`
	Phone   *string               `json:"phone" binding:"omitempty,max=50"`
	Address *string               `json:"address" binding:"omitempty,max=500"`
	Tags    []string              `json:"tags"`
	Status  *models.ClientStatus  `json:"status" binding:"omitempty,client_status"`
	Segment *models.ClientSegment `json:"segment" binding:"omitempty,client_segment"`
	Owner   *string               `json:"owner" binding:"omitempty,max=100"`
	Notes   *string               `json:"notes"`
	DematID *string               `json:"demat_id" binding:"omitempty,max=50"`
}

func (r UpdateClientRequest) patch() models.ClientPatch {
	return models.ClientPatch{
		Name: r.Name, Company: r.Company, Email: r.Email, Phone: r.Phone,
		Address: r.Address, Tags: r.Tags, Status: r.Status, Segment: r.Segment,
		Owner: r.Owner, Notes: r.Notes, DematID: r.DematID,
	}
}

// ClientListQuery holds the filters accepted by the client list and export.
type ClientListQuery struct {
	Search string              `form:"search"`
	Status models.ClientStatus `form:"status" binding:"omitempty,client_status"`
}

func bindClientFilter(c *gin.Context) (services.ClientFilter, error) {
	var q ClientListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return services.ClientFilter{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	filter := services.ClientFilter{Search: q.Search}
	if q.Status != "" {
		filter.Status = &q.Status
	}
	return filter, nil
}

// ListClients handles listing clients
// @Summary     List clients
// @Description Get a paginated list of clients, newest first, optionally filtered
// @Tags        clients
// @Produce     json
// @Security    BearerAuth
// @Param       search    query string false "Case-insensitive match on name, company or email"
// @Param       status    query string false "Client status (Lead, Active, Inactive, Churned)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Client]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	filter, err := bindClientFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	page, err := bindPage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.clientService.ListClients(filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetClient handles fetching a single client
// @Summary     Get client
// @Description Get a client by ID
// @Tags        clients
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Client ID"
// @Success     200 {object} models.Client
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	client, err := h.clientService.GetClient(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// CreateClient handles client creation
// @Summary     Create client
// @Description Add a client. Status defaults to Lead and owner to the caller.
// @Tags        clients
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateClientRequest true "Client details"
// @Success     201 {object} models.Client
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	client, err := h.clientService.CreateClient(actor, models.Client{
		Name: req.Name, Company: req.Company, Email: req.Email, Phone: req.Phone,
		Address: req.Address, Tags: req.Tags, Status: req.Status, Segment: req.Segment,
		Owner: req.Owner, Notes: req.Notes, DematID: req.DematID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor, "CREATE_CLIENT", "client", client.ID, c.ClientIP(),
		map[string]any{"name": client.Name, "status": client.Status})
	c.JSON(http.StatusCreated, client)
}

// UpdateClient handles client updates
// @Summary     Update client
// @Description Change the given fields of a client
// @Tags        clients
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Client ID"
// @Param       request body UpdateClientRequest true "Fields to change"
// @Success     200 {object} models.Client
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	client, err := h.clientService.UpdateClient(id, req.patch())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor, "UPDATE_CLIENT", "client", id, c.ClientIP(), nil)
	c.JSON(http.StatusOK, client)
}

// ArchiveClient marks a client inactive
// @Summary     Archive client
// @Description Set the client's status to Inactive
// @Tags        clients
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Client ID"
// @Success     200 {object} models.Client
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{id}/archive [post]
func (h *ClientHandler) ArchiveClient(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	client, err := h.clientService.ArchiveClient(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor, "ARCHIVE_CLIENT", "client", id, c.ClientIP(), nil)
	c.JSON(http.StatusOK, client)
}

// DeleteClient handles client deletion
// @Summary     Delete client
// @Description Remove a client record. Admin role only. Related records are kept.
// @Tags        clients
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Client ID"
// @Success     200 {object} MessageResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin role required"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.clientService.DeleteClient(actor, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor, "DELETE_CLIENT", "client", id, c.ClientIP(), nil)
	c.JSON(http.StatusOK, MessageResponse{Message: "Client deleted successfully"})
}

// ExportClients downloads the filtered client list as CSV
// @Summary     Export clients
// @Description Download the clients matching the filters as CSV
// @Tags        clients
// @Produce     text/csv
// @Security    BearerAuth
// @Param       search query string false "Case-insensitive match on name, company or email"
// @Param       status query string false "Client status"
// @Success     200 {string} string "CSV file"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /clients/export [get]
func (h *ClientHandler) ExportClients(c *gin.Context) {
	filter, err := bindClientFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	out, err := h.clientService.ExportClients(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	name := "clients_export_" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(out))
}

// ImportClients adds clients from an uploaded CSV
// @Summary     Import clients
// @Description Upload a CSV (multipart field "file" or a raw text/csv body). Rows without name, company or email are skipped.
// @Tags        clients
// @Accept      mpfd,text/csv
// @Produce     json
// @Security    BearerAuth
// @Param       file formData file false "CSV file"
// @Success     201 {object} services.ImportResult
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /clients/import [post]
func (h *ClientHandler) ImportClients(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	text, err := readUpload(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.clientService.ImportClients(actor, text)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor, "IMPORT_CLIENTS", "client", "", c.ClientIP(),
		map[string]any{"imported": result.Imported, "skipped": result.Skipped})
	c.JSON(http.StatusCreated, result)
}

// readUpload returns the CSV text from a multipart "file" field or, for any
// other content type, the raw request body.
func readUpload(c *gin.Context) (string, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)

	var r io.Reader = c.Request.Body
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile("file")
		if err != nil {
			return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "multipart upload must carry a \"file\" field")
		}
		f, err := fh.Open()
		if err != nil {
			return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "cannot read uploaded file")
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "cannot read uploaded file")
	}
	if len(data) == 0 {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "CSV content is required")
	}
	return string(data), nil
}
