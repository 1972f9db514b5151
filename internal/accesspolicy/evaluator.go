package accesspolicy

import (
	"fmt"
	"log"

	"klagedok/internal/domain"
)

// Request is the classification tuple for one attempted document action,
// together with the hard-precondition flags that short-circuit evaluation.
type Request struct {
	User         domain.CaseRole
	CaseStatus   domain.CaseStatus
	DocumentType domain.DocumentType
	Parent       domain.ParentType
	Creator      domain.CreatorRole
	Action       domain.DocumentAction

	// DocumentFinished and CaseMisregistered deny every action with a fixed
	// message, without consulting the rule table.
	DocumentFinished  bool
	CaseMisregistered bool

	// SystemContext marks a trusted backend-initiated execution; evaluation
	// succeeds unconditionally without a rule-table lookup.
	SystemContext bool
}

// Key returns the composite rule key for the request.
func (r Request) Key() string {
	return RuleKey(r.User, r.CaseStatus, r.DocumentType, r.Parent, r.Creator, r.Action)
}

// Evaluator decides whether a document action is allowed and, if not, which
// precise user-facing reason applies. It holds only immutable structures and
// is safe for concurrent use; Evaluate never blocks and never mutates shared
// state.
type Evaluator struct {
	rules   *RuleTable
	catalog *MessageCatalog
}

// NewEvaluator builds an evaluator over an already-loaded rule table and
// message catalog. The catalog is verified against the table here, so a
// deployment whose two tables have drifted apart fails at construction
// instead of on the first affected request.
func NewEvaluator(rules *RuleTable, catalog *MessageCatalog) (*Evaluator, error) {
	if err := catalog.Verify(rules); err != nil {
		return nil, fmt.Errorf("accesspolicy: %w", err)
	}
	return &Evaluator{rules: rules, catalog: catalog}, nil
}

// Evaluate computes the access decision for a request. A nil return is
// success. Evaluation is pure and deterministic: identical requests always
// produce identical results.
func (e *Evaluator) Evaluate(req Request) *Denial {
	if req.SystemContext {
		return nil
	}
	if req.DocumentFinished {
		return &Denial{
			Category: CategoryPrecondition,
			Action:   req.Action,
			Message:  MsgDocumentFinished,
		}
	}
	if req.CaseMisregistered {
		return &Denial{
			Category: CategoryPrecondition,
			Action:   req.Action,
			Message:  MsgCaseMisregistered,
		}
	}

	key := req.Key()
	outcome, ok := e.rules.Lookup(key)
	if !ok {
		// The rule data has not kept pace with reachable system states. This
		// must stay distinguishable from a real denial.
		log.Printf("ERROR accesspolicy.Evaluator: no rule defined for %s", key)
		return &Denial{
			Category: CategoryConfigurationGap,
			Action:   req.Action,
			Key:      key,
			Message:  "Tilgangsregel mangler for denne kombinasjonen. Kontakt Team Klage.",
		}
	}
	if outcome == domain.OutcomeAllowed {
		return nil
	}

	msg, category, ok := e.catalog.Lookup(outcome, req.Action)
	if !ok {
		log.Printf("ERROR accesspolicy.Evaluator: no message for outcome %s, action %s (key %s)", outcome, req.Action, key)
		return &Denial{
			Category: CategoryInconsistency,
			Outcome:  outcome,
			Action:   req.Action,
			Key:      key,
			Message:  "Intern feil i tilgangsreglene. Kontakt Team Klage.",
		}
	}
	return &Denial{
		Category: category,
		Outcome:  outcome,
		Action:   req.Action,
		Key:      key,
		Message:  msg,
	}
}
