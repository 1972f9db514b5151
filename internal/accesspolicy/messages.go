package accesspolicy

import (
	"fmt"
	"strings"

	"klagedok/internal/domain"
)

// Fixed precondition messages. These never go through the catalog.
const (
	MsgDocumentFinished  = "Ferdigstilt dokument kan ikke endres. Kontakt Team Klage."
	MsgCaseMisregistered = "Saken er feilregistrert og kan ikke endres. Kontakt Team Klage."
)

// actionPhrase is the Norwegian infinitive phrase for each action, spliced
// into the catalog templates.
var actionPhrase = map[domain.DocumentAction]string{
	domain.ActionCreate:     "opprette dokumentet",
	domain.ActionWrite:      "skrive i dokumentet",
	domain.ActionRemove:     "slette dokumentet",
	domain.ActionChangeType: "endre dokumenttypen",
	domain.ActionRename:     "endre navn på dokumentet",
	domain.ActionFinish:     "ferdigstille dokumentet",
}

// catalogEntry defines the message template and error category for one
// non-success outcome. Templates use %s for the action phrase; entries without
// a placeholder read the same for every action.
type catalogEntry struct {
	template string
	category Category
}

var catalogEntries = map[domain.Outcome]catalogEntry{
	domain.OutcomeNotAssigned:      {"Kun tildelt saksbehandler kan %s.", CategoryAuthorization},
	domain.OutcomeCaseworkerOnly:   {"Dokumentet tilhører saksbehandlerflyten. Kun saksbehandler kan %s.", CategoryAuthorization},
	domain.OutcomeReviewerOnly:     {"Kun tildelt rådgivende overlege kan %s.", CategoryAuthorization},
	domain.OutcomeCoSignerOnly:     {"Kun medunderskriver kan %s.", CategoryAuthorization},
	domain.OutcomeAssignedRoleOnly: {"Du må ha en rolle på saken for å %s.", CategoryAuthorization},

	domain.OutcomeCaseOpen:               {"Saken er ikke tildelt. Saken må tildeles før du kan %s.", CategoryAuthorization},
	domain.OutcomeCaseCompleted:          {"Saken er fullført. Det er ikke mulig å %s.", CategoryAuthorization},
	domain.OutcomeCaseWithCoSigner:       {"Saken er sendt til medunderskriver. Du kan ikke %s nå.", CategoryAuthorization},
	domain.OutcomeCaseWithReviewer:       {"Saken er sendt til rådgivende overlege. Du kan ikke %s nå.", CategoryAuthorization},
	domain.OutcomeCaseReturnedByReviewer: {"Saken er returnert fra rådgivende overlege. Du kan ikke %s nå.", CategoryAuthorization},
	domain.OutcomeCaseNotWithReviewer:    {"Saken er ikke hos rådgivende overlege. Du kan ikke %s nå.", CategoryAuthorization},

	domain.OutcomeTypeArchived:          {"Dokumentet er journalført. Det er ikke mulig å %s.", CategoryValidation},
	domain.OutcomeTypeUploaded:          {"Dokumentet er lastet opp som fil. Det er ikke mulig å %s.", CategoryValidation},
	domain.OutcomeTypeReviewerQuestions: {"Dokumentet er et spørsmålsdokument til rådgivende overlege. Det er ikke mulig å %s.", CategoryValidation},
	domain.OutcomeTypeReviewerAnswers:   {"Dokumentet er et svardokument fra rådgivende overlege. Det er ikke mulig å %s.", CategoryValidation},
	domain.OutcomeParentMismatch:        {"Dokumentet kan ikke ligge under dette hoveddokumentet.", CategoryValidation},
	domain.OutcomeCreatorMismatch:       {"Dokumentet er opprettet av en annen rolle. Det er ikke mulig å %s.", CategoryValidation},
	domain.OutcomeTypeChangeNotAllowed:  {"Dokumenttypen kan ikke endres for vedlegg.", CategoryValidation},

	domain.OutcomeNotSupported: {"Kombinasjonen er ikke støttet. Kontakt Team Klage.", CategoryInconsistency},
}

// MessageCatalog maps (outcome, action) to a user-facing explanation and an
// error category. Built once, immutable thereafter.
type MessageCatalog struct {
	messages   map[domain.Outcome]map[domain.DocumentAction]string
	categories map[domain.Outcome]Category
}

// NewMessageCatalog builds the catalog for every non-success outcome and
// every action.
func NewMessageCatalog() *MessageCatalog {
	messages := make(map[domain.Outcome]map[domain.DocumentAction]string, len(catalogEntries))
	categories := make(map[domain.Outcome]Category, len(catalogEntries))
	for outcome, entry := range catalogEntries {
		perAction := make(map[domain.DocumentAction]string, len(domain.Actions))
		for _, action := range domain.Actions {
			if strings.Contains(entry.template, "%s") {
				perAction[action] = fmt.Sprintf(entry.template, actionPhrase[action])
			} else {
				perAction[action] = entry.template
			}
		}
		messages[outcome] = perAction
		categories[outcome] = entry.category
	}
	return &MessageCatalog{messages: messages, categories: categories}
}

// Lookup returns the message and category for an (outcome, action) pair.
func (c *MessageCatalog) Lookup(outcome domain.Outcome, action domain.DocumentAction) (string, Category, bool) {
	perAction, ok := c.messages[outcome]
	if !ok {
		return "", "", false
	}
	msg, ok := perAction[action]
	if !ok {
		return "", "", false
	}
	return msg, c.categories[outcome], true
}

// Verify checks that every non-success (outcome, action) pair reachable from
// the rule table has a catalog entry. Run at startup so that drift between the
// decision table and the message table is caught at boot rather than at first
// occurrence in production.
func (c *MessageCatalog) Verify(table *RuleTable) error {
	var missing []string
	table.Each(func(key string, outcome domain.Outcome) {
		if outcome == domain.OutcomeAllowed {
			return
		}
		fields := strings.Split(key, keySeparator)
		action := domain.DocumentAction(fields[len(fields)-1])
		if _, _, ok := c.Lookup(outcome, action); !ok {
			missing = append(missing, fmt.Sprintf("(%s, %s)", outcome, action))
		}
	})
	if len(missing) > 0 {
		return fmt.Errorf("message catalog is missing %d (outcome, action) entries reachable from the rule table, including %s",
			len(missing), missing[0])
	}
	return nil
}
