package chat

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/tradescribe/backend/internal/domain"
)

// CreateChatInput holds parameters for the CreateChat operation.
type CreateChatInput struct {
	Title string
}

// Validate validates the create chat input.
func (i CreateChatInput) Validate() error {
	var errs []domain.FieldError

	if utf8.RuneCountInString(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SendMessageInput holds parameters for the SendMessage operation.
type SendMessageInput struct {
	ChatID  uuid.UUID
	Content string
}

// Validate validates the send message input against the configured length cap.
func (i SendMessageInput) Validate(maxLen int) error {
	var errs []domain.FieldError

	if i.ChatID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "chat_id", Message: "required"})
	}

	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if len(i.Content) > maxLen {
		errs = append(errs, domain.FieldError{
			Field:   "content",
			Message: fmt.Sprintf("must be at most %d bytes", maxLen),
		})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
