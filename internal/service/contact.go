package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Toylycker/Travel-Agency/internal/dto"
	"github.com/Toylycker/Travel-Agency/internal/entity"
	"github.com/Toylycker/Travel-Agency/internal/metrics"
	"github.com/Toylycker/Travel-Agency/internal/repository"
	"github.com/Toylycker/Travel-Agency/internal/validation"
)

// ContactService stores contact form submissions.
type ContactService struct {
	messages      repository.MessagesRepository
	defaultRegion string
}

// NewContactService creates a new instance of ContactService. National phone
// numbers are parsed in defaultRegion.
func NewContactService(messages repository.MessagesRepository, defaultRegion string) *ContactService {
	region := strings.ToUpper(strings.TrimSpace(defaultRegion))
	if region == "" {
		region = defaultPhoneRegion
	}
	return &ContactService{messages: messages, defaultRegion: region}
}

// Submit validates and normalizes the request, then stores it. Nothing is
// stored when validation fails.
func (s *ContactService) Submit(ctx context.Context, req dto.ContactRequest) (*entity.ReceivedMessage, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := validation.ValidateStruct(&req); err != nil {
		return nil, err
	}

	email, ok := normalizeEmail(req.Email)
	if !ok {
		return nil, validation.NewError("email", "must be a valid email address")
	}

	msg := &entity.ReceivedMessage{Email: email, Message: req.Message}
	if req.Phone != "" {
		phone := normalizePhone(req.Phone, s.defaultRegion)
		if phone == "" {
			return nil, validation.NewError("phone", "must be a valid phone number")
		}
		msg.Phone = &phone
	}

	if err := s.messages.Insert(ctx, msg); err != nil {
		return nil, err
	}
	metrics.ContactMessagesTotal.Inc()

	zerolog.Ctx(ctx).Info().
		Int64("message_id", msg.ID).
		Bool("has_phone", msg.Phone != nil).
		Msg("contact message stored")
	return msg, nil
}
