package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/supercash/backoffice/internal/core/domain"
	"github.com/supercash/backoffice/internal/core/ports"
)

// ContractHandler handles HTTP requests for loan contract operations.
type ContractHandler struct {
	store  ports.Store
	issuer ports.Issuer
	now    func() time.Time
}

// NewContractHandler builds a ContractHandler. now defaults to time.Now and
// decides which schedule installments are overdue.
func NewContractHandler(store ports.Store, issuer ports.Issuer, now func() time.Time) *ContractHandler {
	if now == nil {
		now = time.Now
	}
	return &ContractHandler{store: store, issuer: issuer, now: now}
}

// List handles GET /v1/contracts.
//
// @Summary      List contracts
// @Tags         contracts
// @Produce      json
// @Param        status  query     string  false  "active, completed or cancelled"
// @Param        search  query     string  false  "Client name or contract id fragment"
// @Success      200     {object}  listContractsResponse
// @Failure      400     {object}  errorResponse
// @Router       /v1/contracts [get]
func (h *ContractHandler) List(c echo.Context) error {
	status := domain.ContractStatus(c.QueryParam("status"))
	if status != "" && !status.Valid() {
		return fmt.Errorf("list contracts: %w %q", domain.ErrInvalidContractStatus, status)
	}

	contracts := h.store.ListContracts(ports.ListContractsFilter{
		Status: status,
		Search: c.QueryParam("search"),
	})
	items := make([]contractResponse, 0, len(contracts))
	for _, ct := range contracts {
		items = append(items, toContractResponse(ct))
	}
	return c.JSON(http.StatusOK, listContractsResponse{Items: items})
}

// Get handles GET /v1/contracts/:id.
//
// @Summary      Get a contract with guides, schedule and history
// @Tags         contracts
// @Produce      json
// @Param        id   path      string  true  "Contract id"
// @Success      200  {object}  contractDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/contracts/{id} [get]
func (h *ContractHandler) Get(c echo.Context) error {
	detail, err := h.store.ContractDetail(c.Param("id"), h.now())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toContractDetailResponse(detail))
}

// UpdateStatus handles PATCH /v1/contracts/:id/status.
//
// @Summary      Change a contract status
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id    path      string                       true  "Contract id"
// @Param        body  body      updateContractStatusRequest  true  "New status"
// @Success      200   {object}  contractResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/contracts/{id}/status [patch]
func (h *ContractHandler) UpdateStatus(c echo.Context) error {
	var req updateContractStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	contract, err := h.store.UpdateContractStatus(c.Param("id"), domain.ContractStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toContractResponse(contract))
}

// IssueGuide handles POST /v1/contracts/:id/guides.
//
// @Summary      Issue another guide for an active contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true   "Contract id"
// @Param        body  body      issueContractGuideRequest  false  "Value and PIX code; both optional"
// @Success      201   {object}  issueResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/contracts/{id}/guides [post]
func (h *ContractHandler) IssueGuide(c echo.Context) error {
	var req issueContractGuideRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res, err := h.issuer.IssueForContract(c.Request().Context(), c.Param("id"), ports.IssueForContractInput{
		Value:   req.Value,
		PixCode: req.PixCode,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toIssueResponse(res))
}

// AuditEvents handles GET /v1/contracts/:id/audit-events.
//
// @Summary      List the audit trail of a contract
// @Tags         contracts
// @Produce      json
// @Param        id   path      string  true  "Contract id"
// @Success      200  {object}  listAuditEventsResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/contracts/{id}/audit-events [get]
func (h *ContractHandler) AuditEvents(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.store.ContractByID(id); !ok {
		return fmt.Errorf("contract %s: %w", id, domain.ErrContractNotFound)
	}
	return c.JSON(http.StatusOK, listAuditEventsResponse{Items: h.store.AuditEventsByContractID(id)})
}
