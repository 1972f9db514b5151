package accesspolicy_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"klagedok/internal/accesspolicy"
	"klagedok/internal/domain"
)

func newEvaluator(t *testing.T) *accesspolicy.Evaluator {
	t.Helper()
	table, err := accesspolicy.NewStore().Load("")
	assert.NoError(t, err)
	eval, err := accesspolicy.NewEvaluator(table, accesspolicy.NewMessageCatalog())
	assert.NoError(t, err)
	return eval
}

func allowedRequest() accesspolicy.Request {
	return accesspolicy.Request{
		User:         domain.RoleAssignedCaseworker,
		CaseStatus:   domain.CaseStatusWithCaseworker,
		DocumentType: domain.DocTypeSmart,
		Parent:       domain.ParentNone,
		Creator:      domain.CreatorCaseworker,
		Action:       domain.ActionWrite,
	}
}

func TestEvaluate_Allowed(t *testing.T) {
	eval := newEvaluator(t)

	denial := eval.Evaluate(allowedRequest())

	assert.Nil(t, denial)
}

func TestEvaluate_NotAssignedOnOpenCase(t *testing.T) {
	eval := newEvaluator(t)

	denial := eval.Evaluate(accesspolicy.Request{
		User:         domain.RoleGenericCaseworker,
		CaseStatus:   domain.CaseStatusOpen,
		DocumentType: domain.DocTypeSmart,
		Parent:       domain.ParentNone,
		Creator:      domain.CreatorNone,
		Action:       domain.ActionCreate,
	})

	assert.NotNil(t, denial)
	assert.Equal(t, accesspolicy.CategoryAuthorization, denial.Category)
	assert.Equal(t, domain.OutcomeNotAssigned, denial.Outcome)
	assert.Equal(t, "Kun tildelt saksbehandler kan opprette dokumentet.", denial.Message)
	assert.True(t, denial.UserFacing())
}

func TestEvaluate_CaseStateDenialsCarryAction(t *testing.T) {
	eval := newEvaluator(t)

	req := allowedRequest()
	req.CaseStatus = domain.CaseStatusWithCoSigner
	denial := eval.Evaluate(req)

	assert.NotNil(t, denial)
	assert.Equal(t, domain.OutcomeCaseWithCoSigner, denial.Outcome)
	assert.Equal(t, "Saken er sendt til medunderskriver. Du kan ikke skrive i dokumentet nå.", denial.Message)

	req.Action = domain.ActionRemove
	req.CaseStatus = domain.CaseStatusWithReviewer
	denial = eval.Evaluate(req)

	assert.NotNil(t, denial)
	assert.Equal(t, domain.OutcomeCaseWithReviewer, denial.Outcome)
	assert.Equal(t, "Saken er sendt til rådgivende overlege. Du kan ikke slette dokumentet nå.", denial.Message)
}

func TestEvaluate_ValidationDenialOnUploadedWrite(t *testing.T) {
	eval := newEvaluator(t)

	req := allowedRequest()
	req.DocumentType = domain.DocTypeUploaded
	req.Creator = domain.CreatorNone
	denial := eval.Evaluate(req)

	assert.NotNil(t, denial)
	assert.Equal(t, accesspolicy.CategoryValidation, denial.Category)
	assert.Equal(t, domain.OutcomeTypeUploaded, denial.Outcome)
}

func TestEvaluate_FinishedDocumentShortCircuits(t *testing.T) {
	eval := newEvaluator(t)

	req := allowedRequest()
	req.DocumentFinished = true
	denial := eval.Evaluate(req)

	assert.NotNil(t, denial)
	assert.Equal(t, accesspolicy.CategoryPrecondition, denial.Category)
	assert.Equal(t, "Ferdigstilt dokument kan ikke endres. Kontakt Team Klage.", denial.Message)
	// No rule lookup happened, so no key is recorded.
	assert.Empty(t, denial.Key)
}

func TestEvaluate_MisregisteredCaseShortCircuits(t *testing.T) {
	eval := newEvaluator(t)

	req := allowedRequest()
	req.CaseMisregistered = true
	denial := eval.Evaluate(req)

	assert.NotNil(t, denial)
	assert.Equal(t, accesspolicy.CategoryPrecondition, denial.Category)
	assert.Equal(t, "Saken er feilregistrert og kan ikke endres. Kontakt Team Klage.", denial.Message)
}

func TestEvaluate_FinishedBeatsMisregistered(t *testing.T) {
	eval := newEvaluator(t)

	req := allowedRequest()
	req.DocumentFinished = true
	req.CaseMisregistered = true
	denial := eval.Evaluate(req)

	assert.NotNil(t, denial)
	assert.Equal(t, "Ferdigstilt dokument kan ikke endres. Kontakt Team Klage.", denial.Message)
}

func TestEvaluate_SystemContextBypassesEverything(t *testing.T) {
	eval := newEvaluator(t)

	req := accesspolicy.Request{
		User:              domain.RoleGenericCaseworker,
		CaseStatus:        domain.CaseStatusCompleted,
		DocumentType:      domain.DocTypeArchived,
		Parent:            domain.ParentNone,
		Creator:           domain.CreatorNone,
		Action:            domain.ActionRemove,
		DocumentFinished:  true,
		CaseMisregistered: true,
		SystemContext:     true,
	}

	assert.Nil(t, eval.Evaluate(req))
}

func TestEvaluate_MissingRuleIsConfigurationGap(t *testing.T) {
	table, err := accesspolicy.ParseRuleTable([]byte(
		"assigned-caseworker:with-caseworker:smart-document:none:caseworker-system:write,allowed",
	))
	assert.NoError(t, err)
	eval, err := accesspolicy.NewEvaluator(table, accesspolicy.NewMessageCatalog())
	assert.NoError(t, err)

	req := allowedRequest()
	req.Action = domain.ActionRename
	denial := eval.Evaluate(req)

	assert.NotNil(t, denial)
	assert.Equal(t, accesspolicy.CategoryConfigurationGap, denial.Category)
	assert.Equal(t, req.Key(), denial.Key)
	assert.Equal(t, "Tilgangsregel mangler for denne kombinasjonen. Kontakt Team Klage.", denial.Message)
	assert.False(t, denial.UserFacing())
	assert.Contains(t, denial.Error(), denial.Key)
}

func TestEvaluate_Deterministic(t *testing.T) {
	eval := newEvaluator(t)

	req := allowedRequest()
	req.CaseStatus = domain.CaseStatusCompleted

	first := eval.Evaluate(req)
	second := eval.Evaluate(req)

	assert.Equal(t, first, second)
}

func TestEvaluate_AgreesWithTableAndCatalogForEveryRule(t *testing.T) {
	table, err := accesspolicy.NewStore().Load("")
	assert.NoError(t, err)
	catalog := accesspolicy.NewMessageCatalog()
	eval, err := accesspolicy.NewEvaluator(table, catalog)
	assert.NoError(t, err)

	table.Each(func(key string, outcome domain.Outcome) {
		fields := strings.Split(key, ":")
		if !assert.Len(t, fields, 6, "key %s", key) {
			return
		}
		denial := eval.Evaluate(accesspolicy.Request{
			User:         domain.CaseRole(fields[0]),
			CaseStatus:   domain.CaseStatus(fields[1]),
			DocumentType: domain.DocumentType(fields[2]),
			Parent:       domain.ParentType(fields[3]),
			Creator:      domain.CreatorRole(fields[4]),
			Action:       domain.DocumentAction(fields[5]),
		})
		if outcome == domain.OutcomeAllowed {
			assert.Nil(t, denial, "key %s", key)
			return
		}
		if !assert.NotNil(t, denial, "key %s", key) {
			return
		}
		msg, category, ok := catalog.Lookup(outcome, domain.DocumentAction(fields[5]))
		assert.True(t, ok, "key %s", key)
		assert.Equal(t, outcome, denial.Outcome, "key %s", key)
		assert.Equal(t, category, denial.Category, "key %s", key)
		assert.Equal(t, msg, denial.Message, "key %s", key)
	})
}

func TestEvaluate_FullDatasetNeverPanics(t *testing.T) {
	eval := newEvaluator(t)
	table, err := accesspolicy.NewStore().Load("")
	assert.NoError(t, err)

	count := 0
	table.Each(func(key string, outcome domain.Outcome) {
		count++
	})
	assert.Equal(t, 19200, count)

	// Every denial produced from the shipped dataset carries a category and a
	// message.
	for _, role := range []domain.CaseRole{domain.RoleGenericCaseworker, domain.RoleAssignedReviewer} {
		for _, status := range []domain.CaseStatus{domain.CaseStatusOpen, domain.CaseStatusWithReviewer, domain.CaseStatusCompleted} {
			for _, action := range domain.Actions {
				denial := eval.Evaluate(accesspolicy.Request{
					User:         role,
					CaseStatus:   status,
					DocumentType: domain.DocTypeSmart,
					Parent:       domain.ParentNone,
					Creator:      domain.CreatorCaseworker,
					Action:       action,
				})
				if denial != nil {
					assert.NotEmpty(t, denial.Category)
					assert.NotEmpty(t, denial.Message)
				}
			}
		}
	}
}
