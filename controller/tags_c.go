package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hisab-app/hisab-server/models"
	"github.com/hisab-app/hisab-server/models/dbmodels"
	"github.com/hisab-app/hisab-server/repository"
	"gorm.io/gorm"
	"k8s.io/klog/v2"
)

type ExpenseTagsController struct {
	ExpenseTagRepo *repository.ExpenseTagRepo
}

func (tc *ExpenseTagsController) HandleListByGroup(c *fiber.Ctx) error {
	groupID, err := parseIDParam(c)
	if err != nil {
		return ErrBadRequest(c, "Invalid group id")
	}
	tags, err := tc.ExpenseTagRepo.ListByGroup(groupID)
	if err != nil {
		klog.Errorf("Error listing expense tags %s", err)
		return ErrInternalServerError(c, "Error listing expense tags")
	}
	return c.Status(fiber.StatusOK).JSON(tags)
}

func (tc *ExpenseTagsController) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrBadRequest(c, "Invalid tag id")
	}
	tag, err := tc.ExpenseTagRepo.Get(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound(c)
		}
		return ErrInternalServerError(c, "Error getting expense tag")
	}
	return c.Status(fiber.StatusOK).JSON(tag)
}

func (tc *ExpenseTagsController) HandleCreate(c *fiber.Ctx) error {
	var request models.ExpenseTagCreateRequest
	if err := decodeRequest(c, &request); err != nil {
		return ErrBadRequest(c, "Invalid JSON body")
	}
	if request.GroupID == "" || request.Label == "" || request.IconName == "" {
		return ErrBadRequest(c, "groupId, label and iconName are required")
	}
	groupID, err := uuid.Parse(request.GroupID)
	if err != nil {
		return ErrBadRequest(c, "Invalid group id")
	}
	tag := &dbmodels.ExpenseTag{
		GroupID:  groupID,
		Label:    request.Label,
		IconName: request.IconName,
	}
	if err := tc.ExpenseTagRepo.Create(tag); err != nil {
		klog.Errorf("Error creating expense tag %s", err)
		return ErrInternalServerError(c, "Error creating expense tag")
	}
	return c.Status(fiber.StatusOK).JSON(tag)
}

func (tc *ExpenseTagsController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrBadRequest(c, "Invalid tag id")
	}
	var request models.ExpenseTagUpdateRequest
	if err := decodeRequest(c, &request); err != nil {
		return ErrBadRequest(c, "Invalid JSON body")
	}
	if request.Label == "" || request.IconName == "" {
		return ErrBadRequest(c, "label and iconName are required")
	}
	tag, err := tc.ExpenseTagRepo.Get(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound(c)
		}
		return ErrInternalServerError(c, "Error getting expense tag")
	}
	tag.Label = request.Label
	tag.IconName = request.IconName
	if err := tc.ExpenseTagRepo.Update(tag); err != nil {
		klog.Errorf("Error updating expense tag %s", err)
		return ErrInternalServerError(c, "Error updating expense tag")
	}
	return c.Status(fiber.StatusOK).JSON(tag)
}

func (tc *ExpenseTagsController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrBadRequest(c, "Invalid tag id")
	}
	if err := tc.ExpenseTagRepo.Delete(id); err != nil {
		klog.Errorf("Error deleting expense tag %s", err)
		return ErrInternalServerError(c, "Error deleting expense tag")
	}
	return c.SendStatus(fiber.StatusOK)
}
