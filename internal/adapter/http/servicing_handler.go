package http

import (
	"net/http"
	"time"

	"credit-engine/internal/usecase/servicing"

	"github.com/labstack/echo/v4"
)

type ServicingHandler struct{ uc *servicing.Usecase }

func NewServicingHandler(uc *servicing.Usecase) *ServicingHandler {
	return &ServicingHandler{uc: uc}
}

type signReq struct {
	// Accept canonical date `YYYY-MM-DD`; defaults to today.
	SignedAt string `json:"signed_at" validate:"omitempty,datetime=2006-01-02"`
}

func (h *ServicingHandler) Sign(c echo.Context) error {
	var req signReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	signedAt := time.Now().UTC()
	if req.SignedAt != "" {
		signedAt, _ = time.Parse("2006-01-02", req.SignedAt)
	}
	dto, err := h.uc.Sign(c.Request().Context(), c.Param("contract_id"), signedAt, actorID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ServicingHandler) GetContract(c echo.Context) error {
	dto, err := h.uc.GetContract(c.Request().Context(), c.Param("contract_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ServicingHandler) GetSchedule(c echo.Context) error {
	dto, err := h.uc.GetSchedule(c.Request().Context(), c.Param("contract_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type payReq struct {
	PaidAt string `json:"paid_at" validate:"omitempty,datetime=2006-01-02"`
	Method string `json:"method"  validate:"required"`
}

func (h *ServicingHandler) Pay(c echo.Context) error {
	var req payReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	paidAt := time.Now().UTC()
	if req.PaidAt != "" {
		paidAt, _ = time.Parse("2006-01-02", req.PaidAt)
	}
	dto, err := h.uc.MarkPaid(c.Request().Context(), c.Param("payment_id"), paidAt, req.Method, actorID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ServicingHandler) GetPayment(c echo.Context) error {
	dto, err := h.uc.GetPayment(c.Request().Context(), c.Param("payment_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ServicingHandler) MarkMissed(c echo.Context) error {
	dto, err := h.uc.MarkMissed(c.Request().Context(), c.Param("payment_id"), actorID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type suspendReq struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *ServicingHandler) Suspend(c echo.Context) error {
	var req suspendReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Suspend(c.Request().Context(), c.Param("contract_id"), req.Reason, actorID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ServicingHandler) Reactivate(c echo.Context) error {
	dto, err := h.uc.Reactivate(c.Request().Context(), c.Param("contract_id"), actorID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type payoffReq struct {
	PayoffDate string `json:"payoff_date" validate:"required,datetime=2006-01-02"`
	Method     string `json:"method"`
}

func (h *ServicingHandler) SimulatePayoff(c echo.Context) error {
	var req payoffReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	payoffDate, _ := time.Parse("2006-01-02", req.PayoffDate)
	out, err := h.uc.SimulateEarlyRepayment(c.Request().Context(), c.Param("contract_id"), payoffDate)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ServicingHandler) CommitPayoff(c echo.Context) error {
	var req payoffReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	payoffDate, _ := time.Parse("2006-01-02", req.PayoffDate)
	out, err := h.uc.ProcessEarlyRepayment(c.Request().Context(), c.Param("contract_id"), payoffDate, req.Method, actorID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type overdueScanReq struct {
	AsOf string `json:"as_of" validate:"omitempty,datetime=2006-01-02"`
}

func (h *ServicingHandler) OverdueScan(c echo.Context) error {
	var req overdueScanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	asOf := time.Now().UTC()
	if req.AsOf != "" {
		asOf, _ = time.Parse("2006-01-02", req.AsOf)
	}
	n, err := h.uc.DetectOverdue(c.Request().Context(), asOf)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"reclassified": n})
}
