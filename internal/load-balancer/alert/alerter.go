package alert

import (
	"TMS_LoadBalancer_Service/internal/load-balancer/model"
	"TMS_LoadBalancer_Service/pkg/mail"
	"fmt"

	"go.uber.org/zap"
)

// MailAlerter mails the configured admin address whenever a backend drops out
// of the healthy set. Recoveries are logged but not mailed.
type MailAlerter struct {
	sender    mail.Sender
	adminMail string
	logger    *zap.Logger
}

func NewMailAlerter(sender mail.Sender, adminMail string, logger *zap.Logger) *MailAlerter {
	return &MailAlerter{
		sender:    sender,
		adminMail: adminMail,
		logger:    logger,
	}
}

func (a *MailAlerter) OnTransition(event model.HealthTransitionEvent) {
	if event.Transition != model.TransitionBecameUnhealthy {
		return
	}
	go func() {
		subject := fmt.Sprintf("Load balancer alert: server %s is unhealthy", event.ServerID)
		textBody := fmt.Sprintf(
			"Server %s was marked unhealthy at %s after %d consecutive failed health checks.",
			event.ServerID, event.Timestamp.Format("2006-01-02 15:04:05"), event.ErrorCount)
		err := a.sender.SendMail([]string{a.adminMail}, subject, "", textBody, nil)
		if err != nil {
			a.logger.Error("failed to send unhealthy server alert",
				zap.Error(fmt.Errorf("MailAlerter.OnTransition: %w", err)),
				zap.String("server_id", event.ServerID))
		}
	}()
}
