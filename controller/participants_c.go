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

type ParticipantsController struct {
	ParticipantRepo *repository.ParticipantRepo
}

func (pc *ParticipantsController) HandleListByGroup(c *fiber.Ctx) error {
	groupID, err := parseIDParam(c)
	if err != nil {
		return ErrBadRequest(c, "Invalid group id")
	}
	participants, err := pc.ParticipantRepo.ListByGroup(groupID)
	if err != nil {
		klog.Errorf("Error listing participants %s", err)
		return ErrInternalServerError(c, "Error listing participants")
	}
	return c.Status(fiber.StatusOK).JSON(participants)
}

func (pc *ParticipantsController) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrBadRequest(c, "Invalid participant id")
	}
	participant, err := pc.ParticipantRepo.Get(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound(c)
		}
		return ErrInternalServerError(c, "Error getting participant")
	}
	return c.Status(fiber.StatusOK).JSON(participant)
}

func (pc *ParticipantsController) HandleCreate(c *fiber.Ctx) error {
	var request models.ParticipantCreateRequest
	if err := decodeRequest(c, &request); err != nil {
		return ErrBadRequest(c, "Invalid JSON body")
	}
	if request.GroupID == "" || request.Name == "" {
		return ErrBadRequest(c, "groupId and name are required")
	}
	groupID, err := uuid.Parse(request.GroupID)
	if err != nil {
		return ErrBadRequest(c, "Invalid group id")
	}
	participant := &dbmodels.Participant{
		GroupID: groupID,
		Name:    request.Name,
		Order:   request.Order,
	}
	if err := pc.ParticipantRepo.Create(participant); err != nil {
		klog.Errorf("Error creating participant %s", err)
		return ErrInternalServerError(c, "Error creating participant")
	}
	return c.Status(fiber.StatusOK).JSON(participant)
}

func (pc *ParticipantsController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrBadRequest(c, "Invalid participant id")
	}
	var request models.ParticipantUpdateRequest
	if err := decodeRequest(c, &request); err != nil {
		return ErrBadRequest(c, "Invalid JSON body")
	}
	if request.Name == "" {
		return ErrBadRequest(c, "name is required")
	}
	participant, err := pc.ParticipantRepo.Get(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound(c)
		}
		return ErrInternalServerError(c, "Error getting participant")
	}
	participant.Name = request.Name
	participant.Order = request.Order
	if err := pc.ParticipantRepo.Update(participant); err != nil {
		klog.Errorf("Error updating participant %s", err)
		return ErrInternalServerError(c, "Error updating participant")
	}
	return c.Status(fiber.StatusOK).JSON(participant)
}

func (pc *ParticipantsController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrBadRequest(c, "Invalid participant id")
	}
	if err := pc.ParticipantRepo.Delete(id); err != nil {
		klog.Errorf("Error deleting participant %s", err)
		return ErrInternalServerError(c, "Error deleting participant")
	}
	return c.SendStatus(fiber.StatusOK)
}
