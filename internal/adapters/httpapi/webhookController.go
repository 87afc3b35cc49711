package httpapi

import (
	"encoding/json"
	"io"
	"net/http"

	userPort "github.com/Mikielai/crudblog/internal/ports/user"
	webhookPort "github.com/Mikielai/crudblog/internal/ports/webhook"

	"github.com/gin-gonic/gin"
	svix "github.com/svix/svix-webhooks/go"
	"go.uber.org/zap"
)

// providerEvent is the identity provider's webhook payload shape.
type providerEvent struct {
	Type string `json:"type"`
	Data struct {
		ID             string `json:"id"`
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		ImageURL       string `json:"image_url"`
		EmailAddresses []struct {
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
	} `json:"data"`
}

type WebhookController struct {
	sync   UserSyncUseCase
	events webhookPort.EventStore
	wh     *svix.Webhook
	log    *zap.Logger
}

func NewWebhookController(syncUC UserSyncUseCase, events webhookPort.EventStore, signingSecret string, logger *zap.Logger) (*WebhookController, error) {
	wh, err := svix.NewWebhook(signingSecret)
	if err != nil {
		return nil, err
	}
	return &WebhookController{
		sync:   syncUC,
		events: events,
		wh:     wh,
		log:    logger,
	}, nil
}

// Handle verifies the payload signature against the shared secret, drops
// redelivered events, and applies the lifecycle event. Nothing touches the
// database before the signature checks out.
func (ctl *WebhookController) Handle(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read payload"})
		return
	}

	if err := ctl.wh.Verify(payload, c.Request.Header); err != nil {
		ctl.log.Warn("webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook signature"})
		return
	}

	var evt providerEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	eventID := c.GetHeader("svix-id")
	if eventID != "" {
		seen, err := ctl.events.Seen(c.Request.Context(), eventID)
		if err != nil {
			// Dedup is best effort; reconciliation is idempotent anyway.
			ctl.log.Warn("event dedup store unavailable", zap.Error(err))
		} else if seen {
			ctl.log.Info("dropping redelivered webhook event", zap.String("eventID", eventID))
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
	}

	profile := userPort.Profile{
		ID:           evt.Data.ID,
		FirstName:    evt.Data.FirstName,
		LastName:     evt.Data.LastName,
		ProfileImage: evt.Data.ImageURL,
	}
	if len(evt.Data.EmailAddresses) > 0 {
		profile.Email = evt.Data.EmailAddresses[0].EmailAddress
	}

	if err := ctl.sync.Reconcile(c.Request.Context(), evt.Type, profile); err != nil {
		respondError(c, ctl.log, err)
		return
	}

	// The event ID is claimed only after the event applied; a failed
	// delivery stays retryable and the provider's redelivery can land.
	if eventID != "" {
		if err := ctl.events.MarkProcessed(c.Request.Context(), eventID); err != nil {
			ctl.log.Warn("could not record processed event", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
