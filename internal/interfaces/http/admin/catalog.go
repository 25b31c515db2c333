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

func (req *upsertServiceRequest) validate() error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return errors.New("Le nom de la prestation est requis")
	}
	req.Price = strings.TrimSpace(req.Price)
	if req.Price == "" {
		return errors.New("Le tarif est requis")
	}
	if req.Position != nil && *req.Position < 0 {
		return errors.New("La position doit être positive")
	}
	req.Description = strings.TrimSpace(req.Description)
	return nil
}

func (req upsertServiceRequest) command() adminapp.UpsertServiceCommand {
	return adminapp.UpsertServiceCommand{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Position:    req.Position,
	}
}

func (h *Handler) serviceCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertServiceRequest
		if err := decodeJSON(r, common.MaxRequestBody, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Le format de la requête est invalide")
			return
		}
		if err := req.validate(); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		created, err := h.catalog.Create(ctx, req.command())
		if err != nil {
			h.writeDomainError(w, err, "service create failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, buildServiceResponse(*created))
	}
}

func (h *Handler) serviceUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			common.WriteError(h.logger, w, http.StatusBadRequest, "L'identifiant est manquant")
			return
		}

		var req upsertServiceRequest
		if err := decodeJSON(r, common.MaxRequestBody, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Le format de la requête est invalide")
			return
		}
		if err := req.validate(); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.catalog.Update(ctx, id, req.command()); err != nil {
			h.writeDomainError(w, err, "service update failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (h *Handler) serviceDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			common.WriteError(h.logger, w, http.StatusBadRequest, "L'identifiant est manquant")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.catalog.Delete(ctx, id); err != nil {
			h.writeDomainError(w, err, "service delete failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (h *Handler) serviceReorderHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reorderServicesRequest
		if err := decodeJSON(r, common.MaxRequestBody, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Le format de la requête est invalide")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.catalog.Reorder(ctx, req.OrderedIDs); err != nil {
			h.writeDomainError(w, err, "service reorder failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
