package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hisab-app/hisab-server/models"
	"github.com/hisab-app/hisab-server/models/dbmodels"
	"github.com/hisab-app/hisab-server/repository"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"k8s.io/klog/v2"
)

var expenseTypes = []string{"expense", "transfer"}

type ExpensesController struct {
	ExpenseRepo *repository.ExpenseRepo
}

func (ec *ExpensesController) HandleListByGroup(c *fiber.Ctx) error {
	groupID, err := parseIDParam(c)
	if err != nil {
		return ErrBadRequest(c, "Invalid group id")
	}
	expenses, err := ec.ExpenseRepo.ListByGroup(groupID)
	if err != nil {
		klog.Errorf("Error listing expenses %s", err)
		return ErrInternalServerError(c, "Error listing expenses")
	}
	return c.Status(fiber.StatusOK).JSON(expenses)
}

func (ec *ExpensesController) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrBadRequest(c, "Invalid expense id")
	}
	expense, err := ec.ExpenseRepo.Get(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound(c)
		}
		return ErrInternalServerError(c, "Error getting expense")
	}
	return c.Status(fiber.StatusOK).JSON(expense)
}

func (ec *ExpensesController) HandleCreate(c *fiber.Ctx) error {
	var request models.ExpenseCreateRequest
	if err := decodeRequest(c, &request); err != nil {
		return ErrBadRequest(c, "Invalid JSON body")
	}
	if request.GroupID == "" || request.PayerParticipantID == "" || request.Title == "" ||
		request.CurrencyCode == "" || request.SplitType == "" || request.SplitSharesJson == "" {
		return ErrBadRequest(c, "Missing required expense fields")
	}
	groupID, err := uuid.Parse(request.GroupID)
	if err != nil {
		return ErrBadRequest(c, "Invalid group id")
	}
	payerID, err := uuid.Parse(request.PayerParticipantID)
	if err != nil {
		return ErrBadRequest(c, "Invalid payer participant id")
	}
	expenseType := "expense"
	if request.Type != nil {
		if !slices.Contains(expenseTypes, *request.Type) {
			return ErrBadRequest(c, "type must be expense or transfer")
		}
		expenseType = *request.Type
	}
	expense := &dbmodels.Expense{
		GroupID:            groupID,
		PayerParticipantID: payerID,
		AmountCents:        request.AmountCents,
		CurrencyCode:       request.CurrencyCode,
		Title:              request.Title,
		Description:        request.Description,
		Date:               request.Date,
		SplitType:          request.SplitType,
		SplitSharesJson:    request.SplitSharesJson,
		Type:               expenseType,
		ToParticipantID:    request.ToParticipantID,
		Tag:                request.Tag,
		LineItemsJson:      request.LineItemsJson,
		ReceiptImagePath:   request.ReceiptImagePath,
	}
	if err := ec.ExpenseRepo.Create(expense); err != nil {
		klog.Errorf("Error creating expense %s", err)
		return ErrInternalServerError(c, "Error creating expense")
	}
	return c.Status(fiber.StatusOK).JSON(expense)
}

func (ec *ExpensesController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrBadRequest(c, "Invalid expense id")
	}
	var request models.ExpenseUpdateRequest
	if err := decodeRequest(c, &request); err != nil {
		return ErrBadRequest(c, "Invalid JSON body")
	}
	if request.Title == "" || request.SplitSharesJson == "" {
		return ErrBadRequest(c, "title and splitSharesJson are required")
	}
	expense, err := ec.ExpenseRepo.Get(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound(c)
		}
		return ErrInternalServerError(c, "Error getting expense")
	}
	expense.Title = request.Title
	expense.AmountCents = request.AmountCents
	expense.Date = request.Date
	expense.SplitSharesJson = request.SplitSharesJson
	if request.Tag != nil {
		expense.Tag = request.Tag
	}
	if request.Description != nil {
		expense.Description = request.Description
	}
	if request.LineItemsJson != nil {
		expense.LineItemsJson = request.LineItemsJson
	}
	if request.ReceiptImagePath != nil {
		expense.ReceiptImagePath = request.ReceiptImagePath
	}
	if err := ec.ExpenseRepo.Update(expense); err != nil {
		klog.Errorf("Error updating expense %s", err)
		return ErrInternalServerError(c, "Error updating expense")
	}
	return c.Status(fiber.StatusOK).JSON(expense)
}

func (ec *ExpensesController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrBadRequest(c, "Invalid expense id")
	}
	if err := ec.ExpenseRepo.Delete(id); err != nil {
		klog.Errorf("Error deleting expense %s", err)
		return ErrInternalServerError(c, "Error deleting expense")
	}
	return c.SendStatus(fiber.StatusOK)
}
