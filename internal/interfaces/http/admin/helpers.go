package admin

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	adminapp "github.com/damemahigan/site-services/api/internal/admin/application"
	"github.com/damemahigan/site-services/api/internal/interfaces/http/common"
	"github.com/damemahigan/site-services/api/internal/public/domain"
)

func decodeJSON(r *http.Request, limit int64, dst any) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(io.LimitReader(r.Body, limit))
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func pathID(r *http.Request) (string, bool) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	return id, id != ""
}

// writeDomainError maps the domain error taxonomy onto HTTP statuses with
// the French messages the admin UI displays as-is.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error, logContext string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		common.WriteError(h.logger, w, http.StatusNotFound, "Ressource introuvable")
	case errors.Is(err, adminapp.ErrDuplicateExcludedPractice):
		common.WriteError(h.logger, w, http.StatusConflict, "Cette pratique exclue existe déjà")
	case errors.Is(err, adminapp.ErrInvalidReorder):
		common.WriteError(h.logger, w, http.StatusBadRequest, "La liste de réordonnancement est invalide")
	case errors.Is(err, adminapp.ErrInvalidCredentials):
		common.WriteError(h.logger, w, http.StatusUnauthorized, "Mot de passe incorrect")
	case errors.Is(err, domain.ErrStoreUnavailable):
		h.logger.Printf("%s: store unavailable: %v", logContext, err)
		common.WriteError(h.logger, w, http.StatusServiceUnavailable, "La base de données est momentanément indisponible")
	default:
		h.logger.Printf("%s: %v", logContext, err)
		common.WriteError(h.logger, w, http.StatusInternalServerError, "Une erreur interne est survenue")
	}
}
