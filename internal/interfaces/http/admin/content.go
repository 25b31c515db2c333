package admin

import (
	"context"
	"net/http"
	"strings"
	"time"

	adminapp "github.com/damemahigan/site-services/api/internal/admin/application"
	"github.com/damemahigan/site-services/api/internal/interfaces/http/common"
)

func (h *Handler) testimonialRespondHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			common.WriteError(h.logger, w, http.StatusBadRequest, "L'identifiant est manquant")
			return
		}

		var req respondTestimonialRequest
		if err := decodeJSON(r, common.MaxRequestBody, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Le format de la requête est invalide")
			return
		}
		req.Response = strings.TrimSpace(req.Response)
		if req.Response == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "La réponse ne peut pas être vide")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.testimonials.Respond(ctx, id, req.Response); err != nil {
			h.writeDomainError(w, err, "testimonial respond failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (h *Handler) testimonialDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			common.WriteError(h.logger, w, http.StatusBadRequest, "L'identifiant est manquant")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.testimonials.Delete(ctx, id); err != nil {
			h.writeDomainError(w, err, "testimonial delete failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (h *Handler) galleryCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertGalleryImageRequest
		if err := decodeJSON(r, common.MaxImageRequestBody, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Le format de la requête est invalide")
			return
		}
		if strings.TrimSpace(req.URL) == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "L'image est requise")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		created, err := h.gallery.Create(ctx, adminapp.UpsertGalleryImageCommand{
			URL:   req.URL,
			Title: strings.TrimSpace(req.Title),
		})
		if err != nil {
			h.writeDomainError(w, err, "gallery create failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, buildGalleryImageResponse(*created))
	}
}

func (h *Handler) galleryUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			common.WriteError(h.logger, w, http.StatusBadRequest, "L'identifiant est manquant")
			return
		}

		var req upsertGalleryImageRequest
		if err := decodeJSON(r, common.MaxImageRequestBody, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Le format de la requête est invalide")
			return
		}
		if strings.TrimSpace(req.URL) == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "L'image est requise")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		err := h.gallery.Update(ctx, id, adminapp.UpsertGalleryImageCommand{
			URL:   req.URL,
			Title: strings.TrimSpace(req.Title),
		})
		if err != nil {
			h.writeDomainError(w, err, "gallery update failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (h *Handler) galleryDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			common.WriteError(h.logger, w, http.StatusBadRequest, "L'identifiant est manquant")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.gallery.Delete(ctx, id); err != nil {
			h.writeDomainError(w, err, "gallery delete failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (h *Handler) carouselCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertCarouselImageRequest
		if err := decodeJSON(r, common.MaxImageRequestBody, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Le format de la requête est invalide")
			return
		}
		if strings.TrimSpace(req.Src) == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "L'image est requise")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		created, err := h.carousel.Create(ctx, adminapp.UpsertCarouselImageCommand{
			Src: req.Src,
			Alt: strings.TrimSpace(req.Alt),
		})
		if err != nil {
			h.writeDomainError(w, err, "carousel create failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, buildCarouselImageResponse(*created))
	}
}

func (h *Handler) carouselUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			common.WriteError(h.logger, w, http.StatusBadRequest, "L'identifiant est manquant")
			return
		}

		var req upsertCarouselImageRequest
		if err := decodeJSON(r, common.MaxImageRequestBody, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Le format de la requête est invalide")
			return
		}
		if strings.TrimSpace(req.Src) == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "L'image est requise")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		err := h.carousel.Update(ctx, id, adminapp.UpsertCarouselImageCommand{
			Src: req.Src,
			Alt: strings.TrimSpace(req.Alt),
		})
		if err != nil {
			h.writeDomainError(w, err, "carousel update failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (h *Handler) carouselDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			common.WriteError(h.logger, w, http.StatusBadRequest, "L'identifiant est manquant")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.carousel.Delete(ctx, id); err != nil {
			h.writeDomainError(w, err, "carousel delete failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (h *Handler) excludedCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addExcludedPracticeRequest
		if err := decodeJSON(r, common.MaxRequestBody, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Le format de la requête est invalide")
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Le nom est requis")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		created, err := h.excluded.Add(ctx, req.Name)
		if err != nil {
			h.writeDomainError(w, err, "excluded practice add failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, buildExcludedPracticeResponse(*created))
	}
}

func (h *Handler) excludedDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			common.WriteError(h.logger, w, http.StatusBadRequest, "L'identifiant est manquant")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.excluded.Delete(ctx, id); err != nil {
			h.writeDomainError(w, err, "excluded practice delete failed")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
