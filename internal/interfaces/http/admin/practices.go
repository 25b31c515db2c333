package admin

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	adminapp "github.com/damemahigan/site-services/api/internal/admin/application"
	"github.com/damemahigan/site-services/api/internal/interfaces/http/common"
)

func (req *upsertPracticeRequest) validate() error {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return errors.New("Le titre est requis")
	}
	req.Description = strings.TrimSpace(req.Description)
	if req.Description == "" {
		return errors.New("La description est requise")
	}
	req.LongDescription = strings.TrimSpace(req.LongDescription)
	return nil
}

func (req upsertPracticeRequest) command() adminapp.UpsertPracticeCommand {
	return adminapp.UpsertPracticeCommand{
		Title:           req.Title,
		Description:     req.Description,
		ImageURL:        req.ImageURL,
		LongDescription: req.LongDescription,
	}
}

func (h *Handler) practiceCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertPracticeRequest
		if err := decodeJSON(r, common.MaxImageRequestBody, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Le format de la requête est invalide")
			return
		}
		if err := req.validate(); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		created, err := h.practices.Create(ctx, req.command())
		if err != nil {
			h.writeDomainError(w, err, "practice create failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, buildPracticeResponse(*created))
	}
}

func (h *Handler) practiceUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			common.WriteError(h.logger, w, http.StatusBadRequest, "L'identifiant est manquant")
			return
		}

		var req upsertPracticeRequest
		if err := decodeJSON(r, common.MaxImageRequestBody, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Le format de la requête est invalide")
			return
		}
		if err := req.validate(); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		if err := h.practices.Update(ctx, id, req.command()); err != nil {
			h.writeDomainError(w, err, "practice update failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (h *Handler) practiceDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			common.WriteError(h.logger, w, http.StatusBadRequest, "L'identifiant est manquant")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.practices.Delete(ctx, id); err != nil {
			h.writeDomainError(w, err, "practice delete failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (h *Handler) practiceCollapseHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		removed, err := h.practices.CollapseDuplicates(ctx)
		if err != nil {
			h.writeDomainError(w, err, "practice duplicate collapse failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, collapseDuplicatesResponse{Removed: removed})
	}
}
