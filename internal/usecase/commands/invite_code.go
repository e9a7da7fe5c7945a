package commands

import (
	"context"

	"nomaddesk/internal/domain/invite"
	"nomaddesk/internal/pkg/clock"
	"nomaddesk/internal/pkg/errs"
	"nomaddesk/internal/usecase/shared"
)

const maxCodeAttempts = 10

var ErrCodeGeneration = errs.New("invite code generation failed")

// issueInviteCode draws candidates until one is unused. On exhaustion
// it falls back to a timestamp-suffixed code, which terminates with a
// tiny accepted residual collision probability.
func issueInviteCode(ctx context.Context, reads shared.CommandReads, clk clock.Clock) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := invite.NewCode()
		exists, err := reads.InviteCodeExists(ctx, code)
		if err != nil {
			return "", errs.Mark(err, ErrCodeGeneration)
		}
		if !exists {
			return code, nil
		}
	}
	return invite.CodeWithTimestampSuffix(clk.Now()), nil
}
