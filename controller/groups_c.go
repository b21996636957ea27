package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hisab-app/hisab-server/models"
	"github.com/hisab-app/hisab-server/models/dbmodels"
	"github.com/hisab-app/hisab-server/repository"
	"gorm.io/gorm"
	"k8s.io/klog/v2"
)

// Default invite lifetime when the client doesn't ask for one
const defaultInviteTTL = 7 * 24 * time.Hour

type GroupsController struct {
	GroupRepo  *repository.GroupRepo
	MemberRepo *repository.GroupMemberRepo
	InviteRepo *repository.InviteRepo
}

func (gc *GroupsController) HandleList(c *fiber.Ctx) error {
	groups, err := gc.GroupRepo.List()
	if err != nil {
		klog.Errorf("Error listing groups %s", err)
		return ErrInternalServerError(c, "Error listing groups")
	}
	return c.Status(fiber.StatusOK).JSON(groups)
}

func (gc *GroupsController) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrBadRequest(c, "Invalid group id")
	}
	group, err := gc.GroupRepo.Get(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound(c)
		}
		klog.Errorf("Error getting group %s", err)
		return ErrInternalServerError(c, "Error getting group")
	}
	return c.Status(fiber.StatusOK).JSON(group)
}

func (gc *GroupsController) HandleCreate(c *fiber.Ctx) error {
	var request models.GroupCreateRequest
	if err := decodeRequest(c, &request); err != nil {
		return ErrBadRequest(c, "Invalid JSON body")
	}
	if request.Name == "" || request.CurrencyCode == "" {
		return ErrBadRequest(c, "name and currencyCode are required")
	}
	group := &dbmodels.Group{
		Name:         request.Name,
		CurrencyCode: request.CurrencyCode,
	}
	if err := gc.GroupRepo.Create(group); err != nil {
		klog.Errorf("Error creating group %s", err)
		return ErrInternalServerError(c, "Error creating group")
	}
	return c.Status(fiber.StatusOK).JSON(group)
}

func (gc *GroupsController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrBadRequest(c, "Invalid group id")
	}
	var request models.GroupUpdateRequest
	if err := decodeRequest(c, &request); err != nil {
		return ErrBadRequest(c, "Invalid JSON body")
	}
	if request.Name == "" || request.CurrencyCode == "" {
		return ErrBadRequest(c, "name and currencyCode are required")
	}
	group, err := gc.GroupRepo.Get(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound(c)
		}
		klog.Errorf("Error getting group %s", err)
		return ErrInternalServerError(c, "Error getting group")
	}
	group.Name = request.Name
	group.CurrencyCode = request.CurrencyCode
	if request.SettlementMethod != nil {
		group.SettlementMethod = request.SettlementMethod
	}
	if request.TreasurerParticipantID != nil {
		group.TreasurerParticipantID = request.TreasurerParticipantID
	}
	if request.SettlementFreezeAt != nil {
		group.SettlementFreezeAt = request.SettlementFreezeAt
	}
	if request.SettlementSnapshotJson != nil {
		group.SettlementSnapshotJson = request.SettlementSnapshotJson
	}
	if err := gc.GroupRepo.Update(group); err != nil {
		klog.Errorf("Error updating group %s", err)
		return ErrInternalServerError(c, "Error updating group")
	}
	return c.Status(fiber.StatusOK).JSON(group)
}

// HandleFreezeSettlement stores a settlement snapshot and freezes the group on it.
func (gc *GroupsController) HandleFreezeSettlement(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrBadRequest(c, "Invalid group id")
	}
	var request models.FreezeSettlementRequest
	if err := decodeRequest(c, &request); err != nil {
		return ErrBadRequest(c, "Invalid JSON body")
	}
	if request.SettlementSnapshotJson == "" {
		return ErrBadRequest(c, "settlementSnapshotJson is required")
	}
	group, err := gc.GroupRepo.Get(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound(c)
		}
		return ErrInternalServerError(c, "Error getting group")
	}
	freezeAt := request.SettlementFreezeAt
	if freezeAt == 0 {
		freezeAt = time.Now().UnixMilli()
	}
	group.SettlementSnapshotJson = &request.SettlementSnapshotJson
	group.SettlementFreezeAt = &freezeAt
	if err := gc.GroupRepo.Update(group); err != nil {
		klog.Errorf("Error freezing settlement %s", err)
		return ErrInternalServerError(c, "Error freezing settlement")
	}
	return c.Status(fiber.StatusOK).JSON(group)
}

func (gc *GroupsController) HandleUnfreezeSettlement(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrBadRequest(c, "Invalid group id")
	}
	group, err := gc.GroupRepo.Get(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound(c)
		}
		return ErrInternalServerError(c, "Error getting group")
	}
	group.SettlementSnapshotJson = nil
	group.SettlementFreezeAt = nil
	if err := gc.GroupRepo.Update(group); err != nil {
		klog.Errorf("Error unfreezing settlement %s", err)
		return ErrInternalServerError(c, "Error unfreezing settlement")
	}
	return c.Status(fiber.StatusOK).JSON(group)
}

func (gc *GroupsController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrBadRequest(c, "Invalid group id")
	}
	if err := gc.GroupRepo.Delete(id); err != nil {
		klog.Errorf("Error deleting group %s", err)
		return ErrInternalServerError(c, "Error deleting group")
	}
	return c.SendStatus(fiber.StatusOK)
}

// HandleAddMember records a membership fact. The database trigger, not this
// handler, is responsible for any member_joined notification.
func (gc *GroupsController) HandleAddMember(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrBadRequest(c, "Invalid group id")
	}
	var request models.MemberAddRequest
	if err := decodeRequest(c, &request); err != nil {
		return ErrBadRequest(c, "Invalid JSON body")
	}
	if request.UserID == "" {
		return ErrBadRequest(c, "user_id is required")
	}
	member, err := gc.MemberRepo.AddMember(id, request.UserID)
	if err != nil {
		klog.Errorf("Error adding group member %s", err)
		return ErrInternalServerError(c, "Error adding group member")
	}
	return c.Status(fiber.StatusOK).JSON(member)
}

// HandleCreateInvite mints a shareable invite token for the group.
func (gc *GroupsController) HandleCreateInvite(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrBadRequest(c, "Invalid group id")
	}
	var request models.InviteCreateRequest
	if len(c.Body()) > 0 {
		if err := decodeRequest(c, &request); err != nil {
			return ErrBadRequest(c, "Invalid JSON body")
		}
	}
	ttl := defaultInviteTTL
	if request.ExpiresInHours > 0 {
		ttl = time.Duration(request.ExpiresInHours) * time.Hour
	}
	invite, err := gc.InviteRepo.Create(id, ttl)
	if err != nil {
		klog.Errorf("Error creating invite %s", err)
		return ErrInternalServerError(c, "Error creating invite")
	}
	return c.Status(fiber.StatusOK).JSON(invite)
}
