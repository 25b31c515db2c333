package admin

import (
	"context"
	"net/http"
	"time"

	"github.com/damemahigan/site-services/api/internal/interfaces/http/common"
)

func (h *Handler) contactListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		forms, err := h.contacts.List(ctx)
		if err != nil {
			h.writeDomainError(w, err, "contact form list failed")
			return
		}

		items := make([]contactFormSummaryResponse, 0, len(forms))
		for _, form := range forms {
			items = append(items, buildContactFormSummaryResponse(form))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, items)
	}
}

func (h *Handler) contactDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			common.WriteError(h.logger, w, http.StatusBadRequest, "L'identifiant est manquant")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		form, err := h.contacts.Detail(ctx, id)
		if err != nil {
			h.writeDomainError(w, err, "contact form detail failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, buildContactFormDetailResponse(*form))
	}
}

func (h *Handler) contactDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			common.WriteError(h.logger, w, http.StatusBadRequest, "L'identifiant est manquant")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.contacts.Delete(ctx, id); err != nil {
			h.writeDomainError(w, err, "contact form delete failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
