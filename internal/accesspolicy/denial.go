package accesspolicy

import (
	"fmt"

	"klagedok/internal/domain"
)

// Category partitions evaluation failures. The four categories are never
// collapsed: precondition and authorization denials are expected, user-facing
// outcomes; configuration gaps and inconsistencies mean the rule data and the
// running code disagree and must reach operators.
type Category string

const (
	// CategoryPrecondition covers the fixed denials that never consult the
	// rule table: finished document, mis-registered case.
	CategoryPrecondition Category = "precondition"

	// CategoryAuthorization is a data-table-confirmed "no" for this
	// user/case/document/action combination.
	CategoryAuthorization Category = "authorization"

	// CategoryValidation is a denial caused by the document itself (its type,
	// parent or creator) rather than by who is asking.
	CategoryValidation Category = "validation"

	// CategoryConfigurationGap means the classification tuple has no rule at
	// all: the table has not kept pace with reachable system states.
	CategoryConfigurationGap Category = "configuration-gap"

	// CategoryInconsistency means the rule table named an outcome the message
	// catalog has no entry for: the two tables have drifted apart.
	CategoryInconsistency Category = "inconsistency"
)

// Denial is the typed non-success result of an evaluation. A nil *Denial is
// success. Evaluation never panics and never returns a partially filled
// denial: Category and Message are always set.
type Denial struct {
	Category Category
	Outcome  domain.Outcome
	Action   domain.DocumentAction
	Key      string
	Message  string
}

// Error implements the error interface. The message is user-facing for
// precondition/authorization/validation denials; for the operator-facing
// categories it names the offending key.
func (d *Denial) Error() string {
	switch d.Category {
	case CategoryConfigurationGap:
		return fmt.Sprintf("no access rule defined for %s", d.Key)
	case CategoryInconsistency:
		return fmt.Sprintf("no message defined for outcome %s, action %s", d.Outcome, d.Action)
	default:
		return d.Message
	}
}

// UserFacing reports whether the denial should be shown to the end user as-is.
func (d *Denial) UserFacing() bool {
	switch d.Category {
	case CategoryPrecondition, CategoryAuthorization, CategoryValidation:
		return true
	}
	return false
}
