package http

import (
	"net/http"

	"credit-engine/internal/usecase/application"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ApplicationHandler struct{ uc *application.Usecase }

func NewApplicationHandler(uc *application.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type createApplicationReq struct {
	ApplicantID string            `json:"applicant_id" validate:"required,hex32"`
	LoanType    string            `json:"loan_type"    validate:"required"`
	Principal   float64           `json:"principal"    validate:"required,gt=0,dec2"`
	TermMonths  int               `json:"term_months"  validate:"required,gte=1"`
	Purpose     string            `json:"purpose"`
	Snapshot    map[string]string `json:"snapshot"`
}

func (h *ApplicationHandler) Create(c echo.Context) error {
	var req createApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.CreateDraft(c.Request().Context(), application.CreateDraftInput{
		ApplicantID: req.ApplicantID,
		LoanType:    req.LoanType,
		Principal:   decimal.NewFromFloat(req.Principal),
		TermMonths:  req.TermMonths,
		Purpose:     req.Purpose,
		Snapshot:    req.Snapshot,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type updateApplicationReq struct {
	Principal  *float64          `json:"principal"   validate:"omitempty,gt=0,dec2"`
	TermMonths *int              `json:"term_months" validate:"omitempty,gte=1"`
	Purpose    *string           `json:"purpose"`
	Snapshot   map[string]string `json:"snapshot"`
}

func (h *ApplicationHandler) Update(c echo.Context) error {
	var req updateApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := application.UpdateDraftInput{
		TermMonths: req.TermMonths,
		Purpose:    req.Purpose,
		Snapshot:   req.Snapshot,
	}
	if req.Principal != nil {
		p := decimal.NewFromFloat(*req.Principal)
		in.Principal = &p
	}
	dto, err := h.uc.UpdateDraft(c.Request().Context(), c.Param("application_id"), in, actorID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("application_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Submit(c echo.Context) error {
	dto, err := h.uc.Submit(c.Request().Context(), c.Param("application_id"), actorID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) BeginReview(c echo.Context) error {
	dto, err := h.uc.BeginReview(c.Request().Context(), c.Param("application_id"), actorID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type approveReq struct {
	Principal  *float64 `json:"principal"   validate:"omitempty,gt=0,dec2"`
	RatePct    *float64 `json:"rate_pct"    validate:"omitempty,gte=0"`
	TermMonths *int     `json:"term_months" validate:"omitempty,gte=1"`
}

func (h *ApplicationHandler) Approve(c echo.Context) error {
	var req approveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	terms := application.ApproveTerms{TermMonths: req.TermMonths}
	if req.Principal != nil {
		p := decimal.NewFromFloat(*req.Principal)
		terms.Principal = &p
	}
	if req.RatePct != nil {
		r := decimal.NewFromFloat(*req.RatePct)
		terms.RatePct = &r
	}
	dto, err := h.uc.Approve(c.Request().Context(), c.Param("application_id"), terms, actorID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type rejectReq struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *ApplicationHandler) Reject(c echo.Context) error {
	var req rejectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Reject(c.Request().Context(), c.Param("application_id"), req.Reason, actorID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type requestDocumentsReq struct {
	Kinds []string `json:"kinds" validate:"required,min=1,dive,required"`
}

func (h *ApplicationHandler) RequestDocuments(c echo.Context) error {
	var req requestDocumentsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.RequestDocuments(c.Request().Context(), c.Param("application_id"), req.Kinds, actorID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) ResubmitDocuments(c echo.Context) error {
	dto, err := h.uc.ResubmitDocuments(c.Request().Context(), c.Param("application_id"), actorID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type attachDocumentReq struct {
	Kind     string `json:"kind"      validate:"required"`
	FileName string `json:"file_name" validate:"required"`
}

func (h *ApplicationHandler) AttachDocument(c echo.Context) error {
	var req attachDocumentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.AttachDocument(c.Request().Context(), c.Param("application_id"), application.AttachDocumentInput{
		Kind:     req.Kind,
		FileName: req.FileName,
	}, actorID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ApplicationHandler) VerifyDocument(c echo.Context) error {
	dto, err := h.uc.VerifyDocument(c.Request().Context(),
		c.Param("application_id"), c.Param("document_id"), actorID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Score(c echo.Context) error {
	res, err := h.uc.Score(c.Request().Context(), c.Param("application_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
