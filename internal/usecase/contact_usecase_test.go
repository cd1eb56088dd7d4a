package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apartio/internal/domain/entity"
	"apartio/pkg/errors"
)

func TestSubmitMessageStartsAsNew(t *testing.T) {
	uc := NewContactUseCase(newFakeContactRepo())

	message, err := uc.SubmitMessage(context.Background(), SubmitMessageInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Is the loft still available?",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, message.ID)
	assert.Equal(t, entity.MessageStatusNew, message.Status)
	assert.False(t, message.CreatedAt.IsZero())
}

func TestUpdateStatusTouchesOnlyStatus(t *testing.T) {
	uc := NewContactUseCase(newFakeContactRepo())
	ctx := context.Background()

	message, err := uc.SubmitMessage(ctx, SubmitMessageInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Phone:   "+4912345",
		Message: "Is the loft still available?",
	})
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(ctx, message.ID, entity.MessageStatusRead)
	require.NoError(t, err)
	assert.Equal(t, entity.MessageStatusRead, updated.Status)
	assert.Equal(t, message.Name, updated.Name)
	assert.Equal(t, message.Message, updated.Message)
	assert.Equal(t, message.Phone, updated.Phone)
}

func TestUpdateStatusNotFound(t *testing.T) {
	uc := NewContactUseCase(newFakeContactRepo())

	_, err := uc.UpdateStatus(context.Background(), "missing", entity.MessageStatusRead)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestDeleteMessage(t *testing.T) {
	uc := NewContactUseCase(newFakeContactRepo())
	ctx := context.Background()

	message, err := uc.SubmitMessage(ctx, SubmitMessageInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello",
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteMessage(ctx, message.ID))

	messages, err := uc.ListMessages(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages)
}
