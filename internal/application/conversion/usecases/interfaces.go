// Package usecases implements the CV rewriting workflow: quota consumption,
// the AI rewrite call, and retrieval of past conversions.
package usecases

import (
	"context"

	subusecases "github.com/resumelift/resumelift/internal/application/subscription/usecases"
)

// RewriteResult is the AI collaborator's output for one CV.
type RewriteResult struct {
	Text  string
	Model string
}

// Rewriter calls the external AI API to rewrite a CV for a target role.
type Rewriter interface {
	Rewrite(ctx context.Context, sourceText, targetRole string) (RewriteResult, error)
}

// QuotaConsumer takes one conversion unit before the rewrite runs. The
// returned result carries what is needed to refund the unit on failure.
type QuotaConsumer interface {
	Execute(ctx context.Context, userID uint) (*subusecases.ConsumeQuotaResult, error)
}

// UsageRefunder returns a consumed unit when the rewrite fails after the
// counter was already incremented.
type UsageRefunder interface {
	DecrementUsage(ctx context.Context, subscriptionID uint) error
}
