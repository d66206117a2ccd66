package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// WelcomeSender delivers the welcome email. *email.Client implements it.
type WelcomeSender interface {
	SendWelcomeEmail(to, firstName, username string) error
}

// handleWelcomeEmailTask sends the email described by the task. Payloads
// that do not decode skip retries.
func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("decoding %s payload: %v: %w", TaskWelcome, err, asynq.SkipRetry)
	}

	log := j.logger.With().Str("task", TaskWelcome).Str("username", p.Username).Logger()

	if err := j.mailer.SendWelcomeEmail(p.To, p.FirstName, p.Username); err != nil {
		retried, _ := asynq.GetRetryCount(ctx)
		log.Error().Err(err).Int("retry", retried).Msg("welcome email failed")
		return err
	}

	log.Info().Msg("welcome email sent")
	return nil
}
