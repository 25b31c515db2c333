package admin

import (
	"context"
	"errors"
	"net/http"
	"time"
	"unicode/utf8"

	adminapp "github.com/damemahigan/site-services/api/internal/admin/application"
	"github.com/damemahigan/site-services/api/internal/interfaces/http/common"
)

const minPasswordLength = 8

func (h *Handler) loginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSON(r, common.MaxRequestBody, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Le format de la requête est invalide")
			return
		}
		if req.Password == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Le mot de passe est requis")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		token, err := h.auth.Login(ctx, req.Password)
		if err != nil {
			if errors.Is(err, adminapp.ErrInvalidCredentials) {
				common.WriteError(h.logger, w, http.StatusUnauthorized, "Mot de passe incorrect")
				return
			}
			h.writeDomainError(w, err, "admin login failed")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, loginResponse{Token: token})
	}
}

func (h *Handler) verifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !common.IsAdmin(r.Context()) {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "Le jeton d'accès est invalide")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (h *Handler) changePasswordHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req changePasswordRequest
		if err := decodeJSON(r, common.MaxRequestBody, &req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Le format de la requête est invalide")
			return
		}
		if req.CurrentPassword == "" || req.NewPassword == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Les mots de passe actuel et nouveau sont requis")
			return
		}
		if utf8.RuneCountInString(req.NewPassword) < minPasswordLength {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Le nouveau mot de passe doit contenir au moins 8 caractères")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.auth.ChangePassword(ctx, req.CurrentPassword, req.NewPassword); err != nil {
			if errors.Is(err, adminapp.ErrInvalidCredentials) {
				common.WriteError(h.logger, w, http.StatusUnauthorized, "Le mot de passe actuel est incorrect")
				return
			}
			h.writeDomainError(w, err, "admin password change failed")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
