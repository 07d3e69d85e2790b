package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/supercash/backoffice/internal/core/domain"
	"github.com/supercash/backoffice/internal/core/ports"
)

const idempotencyHeader = "Idempotency-Key"

// GuideHandler handles HTTP requests for payment guide operations.
type GuideHandler struct {
	store    ports.Store
	issuer   ports.Issuer
	renderer ports.GuideRenderer
}

func NewGuideHandler(store ports.Store, issuer ports.Issuer, renderer ports.GuideRenderer) *GuideHandler {
	return &GuideHandler{store: store, issuer: issuer, renderer: renderer}
}

// Issue handles POST /v1/guides/issue.
//
// Creates a contract and its first payment guide. A repeated Idempotency-Key
// replays the first result with 200 instead of 201.
//
// @Summary      Issue a payment guide
// @Tags         guides
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string             false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      issueGuideRequest  true   "Loan and client data"
// @Success      201              {object}  issueResponse
// @Success      200              {object}  issueResponse
// @Failure      400              {object}  errorResponse
// @Failure      500              {object}  errorResponse
// @Router       /v1/guides/issue [post]
func (h *GuideHandler) Issue(c echo.Context) error {
	var req issueGuideRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res, err := h.issuer.Issue(c.Request().Context(), ports.IssueGuideInput{
		ClientName:     req.ClientName,
		ClientCPF:      req.ClientCPF,
		LoanValue:      req.LoanValue,
		Installments:   req.Installments,
		InterestRate:   req.InterestRate,
		PixCode:        req.PixCode,
		IdempotencyKey: c.Request().Header.Get(idempotencyHeader),
	})
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if res.AlreadyExisted {
		status = http.StatusOK
	}
	return c.JSON(status, toIssueResponse(res))
}

// List handles GET /v1/guides.
//
// @Summary      List payment guides
// @Tags         guides
// @Produce      json
// @Param        status       query     string  false  "pending or confirmed"
// @Param        contract_id  query     string  false  "Only guides of this contract"
// @Success      200          {object}  listGuidesResponse
// @Failure      400          {object}  errorResponse
// @Router       /v1/guides [get]
func (h *GuideHandler) List(c echo.Context) error {
	status := domain.GuideStatus(c.QueryParam("status"))
	switch status {
	case "", domain.GuidePending, domain.GuideConfirmed:
	default:
		return fmt.Errorf("%w: unknown guide status %q", domain.ErrInvalidInput, status)
	}

	guides := h.store.ListGuides(ports.ListGuidesFilter{
		Status:     status,
		ContractID: c.QueryParam("contract_id"),
	})
	return c.JSON(http.StatusOK, listGuidesResponse{
		Items:  toGuideResponses(guides),
		Totals: domain.SumGuides(guides),
	})
}

// Confirm handles POST /v1/guides/:id/confirm.
//
// @Summary      Confirm a payment
// @Tags         guides
// @Produce      json
// @Param        id   path      string  true  "Guide id"
// @Success      200  {object}  guideResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/guides/{id}/confirm [post]
func (h *GuideHandler) Confirm(c echo.Context) error {
	guide, err := h.store.ConfirmPayment(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGuideResponse(guide))
}

// PDF handles GET /v1/guides/:id/pdf.
//
// @Summary      Download the printable guide
// @Tags         guides
// @Produce      application/pdf
// @Param        id   path  string  true  "Guide id"
// @Success      200  {file}  binary
// @Failure      404  {object}  errorResponse
// @Router       /v1/guides/{id}/pdf [get]
func (h *GuideHandler) PDF(c echo.Context) error {
	id := c.Param("id")
	guide, ok := h.store.GuideByID(id)
	if !ok {
		return fmt.Errorf("guide %s: %w", id, domain.ErrGuideNotFound)
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, guide); err != nil {
		return fmt.Errorf("render guide %s: %w", id, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="guia-pagamento-%s.pdf"`, guide.ID))
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}
