package public

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/damemahigan/site-services/api/internal/interfaces/http/common"
	publicapp "github.com/damemahigan/site-services/api/internal/public/application"
)

type createTestimonialRequest struct {
	Content string `json:"content"`
	Date    string `json:"date"`
}

func (req *createTestimonialRequest) validate() error {
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return errors.New("Le témoignage ne peut pas être vide")
	}
	if utf8.RuneCountInString(req.Content) > 4000 {
		return errors.New("Le témoignage est limité à 4000 caractères")
	}

	req.Date = strings.TrimSpace(req.Date)
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return errors.New("La date doit être au format AAAA-MM-JJ")
	}
	return nil
}

func (h *Handler) testimonialCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req createTestimonialRequest
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

		created, err := h.testimonials.Submit(ctx, publicapp.SubmitTestimonialCommand{
			Content: req.Content,
			Date:    req.Date,
		})
		if err != nil {
			h.logger.Printf("testimonial submit failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "L'enregistrement du témoignage a échoué")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, buildTestimonialResponse(*created))
	}
}
