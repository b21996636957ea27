package repository

import (
	"github.com/google/uuid"
	"github.com/hisab-app/hisab-server/models/dbmodels"
	"gorm.io/gorm"
)

// Repository for SQL operations on participants
type ParticipantRepo struct {
	DB *gorm.DB
}

func (repo *ParticipantRepo) ListByGroup(groupID uuid.UUID) ([]dbmodels.Participant, error) {
	var participants []dbmodels.Participant
	if err := repo.DB.Where("group_id = ?", groupID).Order("sort_order asc").Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

func (repo *ParticipantRepo) Get(id uuid.UUID) (*dbmodels.Participant, error) {
	var participant dbmodels.Participant
	if err := repo.DB.First(&participant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

func (repo *ParticipantRepo) Create(participant *dbmodels.Participant) error {
	return repo.DB.Create(participant).Error
}

func (repo *ParticipantRepo) Update(participant *dbmodels.Participant) error {
	return repo.DB.Save(participant).Error
}

func (repo *ParticipantRepo) Delete(id uuid.UUID) error {
	return repo.DB.Delete(&dbmodels.Participant{}, "id = ?", id).Error
}
