package public

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/damemahigan/site-services/api/internal/public/domain"
)

// notifyContactReceipt pushes a summary of a new booking request to the
// messenger gateway. Delivery is best effort: a failure is logged and parked
// in failed_notifications for manual replay, never surfaced to the visitor.
func (h *Handler) notifyContactReceipt(ctx context.Context, form domain.ContactForm) {
	if ctx == nil {
		ctx = context.Background()
	}
	dest := strings.TrimSpace(h.messengerDestination)
	if dest == "" {
		return
	}

	message := buildContactMessage(h.adminContactBaseURL, form)
	err := h.sendMessengerWithRetry(ctx, dest, form.ID, message, 3, 200*time.Millisecond)
	if err == nil {
		return
	}
	if h.logger != nil {
		h.logger.Printf("contact notification failed: %v", err)
	}
	h.persistNotificationFailure(ctx, form, err, 3)
}

func buildContactMessage(adminBaseURL string, form domain.ContactForm) string {
	var builder strings.Builder
	builder.WriteString("Nouvelle demande de séance reçue.\n")

	addLine := func(label, value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		builder.WriteString(fmt.Sprintf("- %s : %s\n", label, value))
	}

	addLine("Nom ou pseudo", form.NameOrPseudo)
	addLine("Âge", form.Age)
	addLine("Expérience", form.ExperienceLevel)
	addLine("Pratiques souhaitées", form.DesiredPractices)
	addLine("Limites", form.Limits)
	addLine("Durée souhaitée", form.SessionDuration)
	addLine("Contact", form.ContactPreference)
	addLine("Email", form.Email)
	addLine("Téléphone", form.Phone)

	if form.ID != "" && strings.TrimSpace(adminBaseURL) != "" {
		builder.WriteString(fmt.Sprintf("[Voir dans l'administration](%s/%s)\n", strings.TrimRight(adminBaseURL, "/"), form.ID))
	}
	return builder.String()
}

func (h *Handler) sendMessengerWithRetry(ctx context.Context, destination, identifier, text string, attempts int, delay time.Duration) error {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := h.sendMessengerMessage(ctx, destination, identifier, text); err == nil {
			return nil
		} else {
			lastErr = err
		}
		if delay > 0 {
			time.Sleep(delay)
		}
	}
	return lastErr
}

func (h *Handler) persistNotificationFailure(ctx context.Context, form domain.ContactForm, cause error, attempts int) {
	if h.failedNotifications == nil || cause == nil {
		return
	}
	doc := bson.M{
		"target": "contact_notification",
		"payload": bson.M{
			"contactFormId": form.ID,
			"nameOrPseudo":  form.NameOrPseudo,
			"email":         form.Email,
		},
		"error":       cause.Error(),
		"attempts":    attempts,
		"status":      "pending",
		"createdAt":   time.Now().UTC(),
		"lastTriedAt": time.Now().UTC(),
	}
	if _, err := h.failedNotifications.InsertOne(ctx, doc); err != nil && h.logger != nil {
		h.logger.Printf("failed_notifications insert failed: %v", err)
	}
}

func (h *Handler) sendMessengerMessage(ctx context.Context, destination, identifier, bodyText string) error {
	trimmedID := strings.TrimSpace(identifier)
	if trimmedID == "" {
		return errors.New("identifier is required")
	}

	payload := map[string]any{
		"userId": trimmedID,
		"text":   bodyText,
	}
	if dest := strings.TrimSpace(destination); dest != "" {
		payload["destination"] = dest
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("build messenger payload: %w", err)
	}

	timeout := h.httpClient.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	endpoint := strings.TrimRight(h.messengerEndpoint, "/") + "/messages"
	req, err := http.NewRequestWithContext(ctxWithTimeout, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build messenger request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := h.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send messenger request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		message, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
		return fmt.Errorf("messenger gateway error: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(message)))
	}
	return nil
}
