// Package promotion decides whether a code may be applied to an order and
// caches the active catalog for display. Validation is pure: the lookup is
// injected so the caller chooses between the cached catalog and a fresh
// authoritative read.
package promotion

import (
	"strings"
	"time"

	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/models"
)

// RejectionReason enumerates why a code was declined. A rejection is an
// expected outcome, returned as a value, never an error.
type RejectionReason string

const (
	ReasonNotFound          RejectionReason = "not_found"
	ReasonInactive          RejectionReason = "inactive"
	ReasonNotYetStarted     RejectionReason = "not_yet_started"
	ReasonExpired           RejectionReason = "expired"
	ReasonUsageLimitReached RejectionReason = "usage_limit_reached"
	ReasonBelowMinimumOrder RejectionReason = "below_minimum_order"
)

// LookupFunc resolves a normalized code to a promotion record.
type LookupFunc func(code string) (*models.Promotion, bool)

type Result struct {
	Promotion *models.Promotion
	Reason    RejectionReason
}

func (r Result) Accepted() bool {
	return r.Reason == ""
}

func accepted(promo *models.Promotion) Result {
	return Result{Promotion: promo}
}

func rejected(reason RejectionReason) Result {
	return Result{Reason: reason}
}

// NormalizeCode trims surrounding whitespace and upper-cases the code so
// lookups are case-insensitive.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate runs the eligibility checks in a fixed order and short-circuits
// at the first failure, so the same input always yields the same rejection
// reason. Date checks precede the amount check. The validator performs no
// I/O and no mutation; the usage-limit check here is a pre-flight only, the
// authoritative enforcement happens at the redemption increment.
func Validate(code string, cartSubtotal int64, now time.Time, lookup LookupFunc) Result {

	promo, found := lookup(NormalizeCode(code))
	if !found {
		return rejected(ReasonNotFound)
	}

	if !promo.IsActive {
		return rejected(ReasonInactive)
	}

	if now.Before(promo.StartDate) {
		return rejected(ReasonNotYetStarted)
	}

	// EndDate is an exclusive upper bound.
	if !now.Before(promo.EndDate) {
		return rejected(ReasonExpired)
	}

	if promo.UsageLimit != nil && promo.UsageCount >= *promo.UsageLimit {
		return rejected(ReasonUsageLimitReached)
	}

	if cartSubtotal < promo.MinimumOrderAmount {
		return rejected(ReasonBelowMinimumOrder)
	}

	return accepted(promo)
}
