package usecase

import (
	"context"
	"time"

	"apartio/internal/domain/entity"
	"apartio/internal/domain/repository"
)

type ContactUseCase struct {
	contactRepo repository.ContactRepository
}

func NewContactUseCase(contactRepo repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{
		contactRepo: contactRepo,
	}
}

type SubmitMessageInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

func (uc *ContactUseCase) ListMessages(ctx context.Context) ([]*entity.ContactMessage, error) {
	return uc.contactRepo.List(ctx)
}

func (uc *ContactUseCase) SubmitMessage(ctx context.Context, input SubmitMessageInput) (*entity.ContactMessage, error) {
	message := &entity.ContactMessage{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Message:   input.Message,
		Status:    entity.MessageStatusNew,
		CreatedAt: time.Now(),
	}

	if err := uc.contactRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

// UpdateStatus toggles a message between new and read. No other field is
// touched by admin edits.
func (uc *ContactUseCase) UpdateStatus(ctx context.Context, id, status string) (*entity.ContactMessage, error) {
	message, err := uc.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	message.Status = status

	if err := uc.contactRepo.Update(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

func (uc *ContactUseCase) DeleteMessage(ctx context.Context, id string) error {
	if _, err := uc.contactRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.contactRepo.Delete(ctx, id)
}
