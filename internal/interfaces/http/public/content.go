package public

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/damemahigan/site-services/api/internal/interfaces/http/common"
	"github.com/damemahigan/site-services/api/internal/public/domain"
)

// List endpoints always answer 200: the query service already degrades a
// failed read to an empty slice so the site keeps rendering.

func (h *Handler) practiceListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		practices := h.content.Practices(ctx)
		items := make([]practiceResponse, 0, len(practices))
		for _, practice := range practices {
			items = append(items, buildPracticeResponse(practice))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, items)
	}
}

func (h *Handler) practiceDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "L'identifiant de la pratique est manquant")
			return
		}

		practice, err := h.content.PracticeByID(ctx, idParam)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "Pratique introuvable")
				return
			}
			h.logger.Printf("practice detail fetch failed id=%q err=%v", idParam, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "Impossible de récupérer la pratique")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildPracticeResponse(*practice))
	}
}

func (h *Handler) testimonialListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		testimonials := h.content.Testimonials(ctx)
		items := make([]testimonialResponse, 0, len(testimonials))
		for _, testimonial := range testimonials {
			items = append(items, buildTestimonialResponse(testimonial))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, items)
	}
}

func (h *Handler) serviceListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		services := h.content.Services(ctx)
		items := make([]serviceResponse, 0, len(services))
		for _, service := range services {
			items = append(items, buildServiceResponse(service))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, items)
	}
}

func (h *Handler) galleryListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		images := h.content.GalleryImages(ctx)
		items := make([]galleryImageResponse, 0, len(images))
		for _, image := range images {
			items = append(items, buildGalleryImageResponse(image))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, items)
	}
}

func (h *Handler) carouselListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		images := h.content.CarouselImages(ctx)
		items := make([]carouselImageResponse, 0, len(images))
		for _, image := range images {
			items = append(items, buildCarouselImageResponse(image))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, items)
	}
}

func (h *Handler) excludedPracticeListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		practices := h.content.ExcludedPractices(ctx)
		items := make([]excludedPracticeResponse, 0, len(practices))
		for _, practice := range practices {
			items = append(items, buildExcludedPracticeResponse(practice))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, items)
	}
}
