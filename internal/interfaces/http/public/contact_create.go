package public

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/damemahigan/site-services/api/internal/interfaces/http/common"
	publicapp "github.com/damemahigan/site-services/api/internal/public/application"
)

type createContactRequest struct {
	NameOrPseudo        string `json:"nameOrPseudo"`
	Age                 string `json:"age"`
	Height              string `json:"height"`
	Weight              string `json:"weight"`
	ExperienceLevel     string `json:"experienceLevel"`
	DesiredPractices    string `json:"desiredPractices"`
	Limits              string `json:"limits"`
	FetishSpecification string `json:"fetishSpecification,omitempty"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	ContactPreference   string `json:"contactPreference"`
	SessionDuration     string `json:"sessionDuration"`
}

func (req *createContactRequest) validate() error {
	required := []struct {
		value *string
		label string
	}{
		{&req.NameOrPseudo, "Le nom ou pseudo"},
		{&req.Age, "L'âge"},
		{&req.Height, "La taille"},
		{&req.Weight, "Le poids"},
		{&req.ExperienceLevel, "Le niveau d'expérience"},
		{&req.DesiredPractices, "Les pratiques souhaitées"},
		{&req.Limits, "Les limites"},
		{&req.Email, "L'email"},
		{&req.Phone, "Le téléphone"},
		{&req.ContactPreference, "La préférence de contact"},
		{&req.SessionDuration, "La durée de séance"},
	}
	for _, field := range required {
		*field.value = strings.TrimSpace(*field.value)
		if *field.value == "" {
			return fmt.Errorf("%s est requis", field.label)
		}
	}
	req.FetishSpecification = strings.TrimSpace(req.FetishSpecification)

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return err
	}
	req.Email = email
	return nil
}

func normalizeEmail(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) > 254 {
		return "", errors.New("L'email est limité à 254 caractères")
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", errors.New("Le format de l'email est invalide")
	}
	return trimmed, nil
}

func (h *Handler) contactCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req createContactRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Le format de la requête est invalide")
			return
		}

		if err := req.validate(); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		created, err := h.contacts.Submit(ctx, publicapp.SubmitContactFormCommand{
			NameOrPseudo:        req.NameOrPseudo,
			Age:                 req.Age,
			Height:              req.Height,
			Weight:              req.Weight,
			ExperienceLevel:     req.ExperienceLevel,
			DesiredPractices:    req.DesiredPractices,
			Limits:              req.Limits,
			FetishSpecification: req.FetishSpecification,
			Email:               req.Email,
			Phone:               req.Phone,
			ContactPreference:   req.ContactPreference,
			SessionDuration:     req.SessionDuration,
		})
		if err != nil {
			h.logger.Printf("contact form submit failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "L'envoi de la demande a échoué")
			return
		}

		go h.notifyContactReceipt(context.Background(), *created)

		common.WriteJSON(h.logger, w, http.StatusCreated, contactCreatedResponse{
			Status:    "ok",
			ID:        created.ID,
			CreatedAt: created.CreatedAt,
		})
	}
}
