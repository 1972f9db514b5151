package accesspolicy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"klagedok/internal/accesspolicy"
	"klagedok/internal/domain"
)

func TestMessageCatalog_ActionSpecificMessages(t *testing.T) {
	catalog := accesspolicy.NewMessageCatalog()

	tests := []struct {
		outcome domain.Outcome
		action  domain.DocumentAction
		want    string
	}{
		{domain.OutcomeNotAssigned, domain.ActionCreate, "Kun tildelt saksbehandler kan opprette dokumentet."},
		{domain.OutcomeNotAssigned, domain.ActionWrite, "Kun tildelt saksbehandler kan skrive i dokumentet."},
		{domain.OutcomeNotAssigned, domain.ActionRemove, "Kun tildelt saksbehandler kan slette dokumentet."},
		{domain.OutcomeNotAssigned, domain.ActionChangeType, "Kun tildelt saksbehandler kan endre dokumenttypen."},
		{domain.OutcomeNotAssigned, domain.ActionRename, "Kun tildelt saksbehandler kan endre navn på dokumentet."},
		{domain.OutcomeNotAssigned, domain.ActionFinish, "Kun tildelt saksbehandler kan ferdigstille dokumentet."},
		{domain.OutcomeCaseCompleted, domain.ActionWrite, "Saken er fullført. Det er ikke mulig å skrive i dokumentet."},
		{domain.OutcomeTypeArchived, domain.ActionRename, "Dokumentet er journalført. Det er ikke mulig å endre navn på dokumentet."},
	}

	for _, tt := range tests {
		msg, _, ok := catalog.Lookup(tt.outcome, tt.action)
		assert.True(t, ok)
		assert.Equal(t, tt.want, msg)
	}
}

func TestMessageCatalog_FixedMessagesIgnoreAction(t *testing.T) {
	catalog := accesspolicy.NewMessageCatalog()

	first, _, ok := catalog.Lookup(domain.OutcomeParentMismatch, domain.ActionCreate)
	assert.True(t, ok)
	for _, action := range domain.Actions {
		msg, _, ok := catalog.Lookup(domain.OutcomeParentMismatch, action)
		assert.True(t, ok)
		assert.Equal(t, first, msg)
	}
}

func TestMessageCatalog_Categories(t *testing.T) {
	catalog := accesspolicy.NewMessageCatalog()

	tests := []struct {
		outcome domain.Outcome
		want    accesspolicy.Category
	}{
		{domain.OutcomeNotAssigned, accesspolicy.CategoryAuthorization},
		{domain.OutcomeCaseWithCoSigner, accesspolicy.CategoryAuthorization},
		{domain.OutcomeTypeUploaded, accesspolicy.CategoryValidation},
		{domain.OutcomeCreatorMismatch, accesspolicy.CategoryValidation},
		{domain.OutcomeNotSupported, accesspolicy.CategoryInconsistency},
	}

	for _, tt := range tests {
		_, category, ok := catalog.Lookup(tt.outcome, domain.ActionWrite)
		assert.True(t, ok)
		assert.Equal(t, tt.want, category)
	}
}

func TestMessageCatalog_NoEntryForAllowed(t *testing.T) {
	catalog := accesspolicy.NewMessageCatalog()

	_, _, ok := catalog.Lookup(domain.OutcomeAllowed, domain.ActionWrite)
	assert.False(t, ok)
}

func TestMessageCatalog_VerifyAgainstFullDataset(t *testing.T) {
	table, err := accesspolicy.NewStore().Load("")
	assert.NoError(t, err)

	assert.NoError(t, accesspolicy.NewMessageCatalog().Verify(table))
}

func TestMessageCatalog_VerifyIgnoresAllowedRules(t *testing.T) {
	// Allowed rules need no message; a table of only allowed rules verifies
	// against any catalog.
	table, err := accesspolicy.ParseRuleTable([]byte(
		"assigned-caseworker:with-caseworker:smart-document:none:caseworker-system:write,allowed",
	))
	assert.NoError(t, err)

	assert.NoError(t, accesspolicy.NewMessageCatalog().Verify(table))
}
