package application

import (
	"context"

	"github.com/damemahigan/site-services/api/internal/cache"
	"github.com/damemahigan/site-services/api/internal/public/domain"
)

type contactCommandService struct {
	repo  ContactFormRepository
	cache *cache.Cache
}

// NewContactCommandService creates the contact-form submission service.
func NewContactCommandService(repo ContactFormRepository, c *cache.Cache) ContactCommandService {
	return &contactCommandService{repo: repo, cache: c}
}

// Submit stores the booking request. The creation timestamp is assigned by
// the gateway; the admin listing cache is invalidated so the submission
// shows up on the next admin read.
func (s *contactCommandService) Submit(ctx context.Context, cmd SubmitContactFormCommand) (*domain.ContactForm, error) {
	form := &domain.ContactForm{
		NameOrPseudo:        cmd.NameOrPseudo,
		Age:                 cmd.Age,
		Height:              cmd.Height,
		Weight:              cmd.Weight,
		ExperienceLevel:     cmd.ExperienceLevel,
		DesiredPractices:    cmd.DesiredPractices,
		Limits:              cmd.Limits,
		FetishSpecification: cmd.FetishSpecification,
		Email:               cmd.Email,
		Phone:               cmd.Phone,
		ContactPreference:   cmd.ContactPreference,
		SessionDuration:     cmd.SessionDuration,
	}
	if err := s.repo.Create(ctx, form); err != nil {
		return nil, err
	}
	s.cache.Invalidate(cache.KeyContactForms)
	return form, nil
}
