package handlers

import (
	"errors"
	"log"
	"net/http"

	request "gestion_flota/internal/adapter/http/dto/request"
	response "gestion_flota/internal/adapter/http/dto/response"
	"gestion_flota/internal/domain/entities"
	"gestion_flota/internal/usecase"
	"gestion_flota/internal/usecase/interfaces"
	"gestion_flota/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidExpensePayload = pkg.NewDomainErrorSimple("INVALID_EXPENSE_INPUT", "Invalid expense payload", http.StatusBadRequest)

// ExpenseHandler handles the expense ledger and the annual cap. The optional
// boleta upload goes through the attachment store before the expense is
// recorded; a failed upload fails the whole request.

type ExpenseHandler struct {
	usecase      usecase.IExpenseUseCase
	annualBudget usecase.IAnnualBudgetUseCase
	attachments  interfaces.IAttachmentStorage
}

func NewExpenseHandler(
	uc usecase.IExpenseUseCase,
	annualBudget usecase.IAnnualBudgetUseCase,
	attachments interfaces.IAttachmentStorage,
) *ExpenseHandler {
	return &ExpenseHandler{usecase: uc, annualBudget: annualBudget, attachments: attachments}
}

// ListExpenses serves the ledger plus the annual budget snapshot. The
// optional periodo/valor query pair narrows the ledger; the snapshot always
// reflects total spend.
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	var (
		expenses []entities.Expense
		err      error
	)

	periodo := c.Query("periodo")
	if periodo != "" && periodo != usecase.PeriodAll {
		expenses, err = h.usecase.FilterByPeriod(c.Request.Context(), periodo, c.Query("valor"))
	} else {
		expenses, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status, err := h.annualBudget.Status(c.Request.Context())
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ExpenseListResponse{
		Gastos:      response.FromExpenses(expenses),
		Presupuesto: response.FromAnnualBudgetStatus(status),
	})
}

func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var payload request.ExpenseCreateRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return
	}

	boletaPath := ""
	if file, err := c.FormFile("boleta"); err == nil && file != nil {
		if h.attachments == nil {
			log.Printf("[expense][handler] boleta upload rejected, attachment store not configured filename=%s", file.Filename)
			appErr := pkg.NewDomainErrorSimple("ATTACHMENT_STORE_UNAVAILABLE", "Attachment storage is not configured", http.StatusServiceUnavailable)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		src, err := file.Open()
		if err != nil {
			appErr := pkg.NewDomainError("ATTACHMENT_READ_FAILED", "Could not read boleta upload", err, http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		defer src.Close()

		boletaPath, err = h.attachments.Save(c.Request.Context(), file.Filename, src)
		if err != nil {
			log.Printf("[expense][handler] boleta save failed filename=%s err=%v", file.Filename, err)
			appErr := pkg.NewDomainError("ATTACHMENT_SAVE_FAILED", "Could not store boleta upload", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	expense, err := h.usecase.Record(c.Request.Context(), payload.ToDraft(boletaPath))
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromExpense(expense))
}

func (h *ExpenseHandler) SetAnnualBudget(c *gin.Context) {
	var payload request.AnnualBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return
	}

	status, err := h.annualBudget.SetCap(c.Request.Context(), payload.PresupuestoAnual)
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAnnualBudgetStatus(status))
}

func mapExpenseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingExpenseField),
		errors.Is(err, usecase.ErrInvalidExpenseAmount),
		errors.Is(err, usecase.ErrInvalidPeriodFilter),
		errors.Is(err, usecase.ErrInvalidAnnualCap):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
