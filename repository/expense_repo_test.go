package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hisab-app/hisab-server/models/dbmodels"
	"github.com/stretchr/testify/assert"
)

func TestExpenseListByGroup(t *testing.T) {
	repo := &ExpenseRepo{DB: testDb(t)}
	groupID := uuid.New()
	otherGroupID := uuid.New()
	payerID := uuid.New()

	first := &dbmodels.Expense{
		GroupID:            groupID,
		PayerParticipantID: payerID,
		AmountCents:        2550,
		CurrencyCode:       "USD",
		Title:              "Lunch",
		Date:               time.Now().UnixMilli(),
		SplitType:          "equal",
		SplitSharesJson:    "{}",
		Type:               "expense",
	}
	assert.Nil(t, repo.Create(first))
	// Distinct created_at stamps to make the ordering observable
	time.Sleep(5 * time.Millisecond)
	second := &dbmodels.Expense{
		GroupID:            groupID,
		PayerParticipantID: payerID,
		AmountCents:        1200,
		CurrencyCode:       "USD",
		Title:              "Taxi",
		Date:               time.Now().UnixMilli(),
		SplitType:          "equal",
		SplitSharesJson:    "{}",
		Type:               "expense",
	}
	assert.Nil(t, repo.Create(second))
	assert.Nil(t, repo.Create(&dbmodels.Expense{
		GroupID:            otherGroupID,
		PayerParticipantID: payerID,
		AmountCents:        900,
		CurrencyCode:       "EUR",
		Title:              "Coffee",
		Date:               time.Now().UnixMilli(),
		SplitType:          "equal",
		SplitSharesJson:    "{}",
		Type:               "expense",
	}))

	// Newest first, scoped to the group
	expenses, err := repo.ListByGroup(groupID)
	assert.Nil(t, err)
	assert.Len(t, expenses, 2)
	assert.Equal(t, "Taxi", expenses[0].Title)
	assert.Equal(t, "Lunch", expenses[1].Title)
}

func TestExpenseTransfer(t *testing.T) {
	repo := &ExpenseRepo{DB: testDb(t)}
	groupID := uuid.New()
	payerID := uuid.New()
	toID := uuid.New().String()

	transfer := &dbmodels.Expense{
		GroupID:            groupID,
		PayerParticipantID: payerID,
		AmountCents:        5000,
		CurrencyCode:       "USD",
		Title:              "Settle up",
		Date:               time.Now().UnixMilli(),
		SplitType:          "none",
		SplitSharesJson:    "{}",
		Type:               "transfer",
		ToParticipantID:    &toID,
	}
	assert.Nil(t, repo.Create(transfer))

	found, err := repo.Get(transfer.ID)
	assert.Nil(t, err)
	assert.Equal(t, "transfer", found.Type)
	assert.Equal(t, toID, *found.ToParticipantID)
}
