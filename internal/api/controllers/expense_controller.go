package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type ExpenseController struct {
	expenseService services.ExpenseServiceInterface
}

func NewExpenseController(expenseService services.ExpenseServiceInterface) *ExpenseController {
	return &ExpenseController{
		expenseService: expenseService,
	}
}

// AddExpense godoc
// @Summary Add an expense
// @Tags Expense
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.AddExpenseRequest true "Expense details"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/expenses [post]
func (e *ExpenseController) AddExpense(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	var req request_models.AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	expenseID, err := e.expenseService.AddExpense(c.Request.Context(), callerFrom(c), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondFields(c, http.StatusCreated, gin.H{"expenseId": expenseID})
}

// ListExpenses godoc
// @Summary List trip expenses
// @Description Fetch the normalized expense ledger in insertion order
// @Tags Expense
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {array} response_models.ExpenseView
// @Security BearerAuth
// @Router /trips/{id}/expenses [get]
func (e *ExpenseController) ListExpenses(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	expenses, err := e.expenseService.ListExpenses(c.Request.Context(), c.GetString("user_id"), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expenses, "Expenses fetched successfully")
}
