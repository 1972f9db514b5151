package accesspolicy_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"klagedok/internal/accesspolicy"
	"klagedok/internal/domain"
)

func TestRuleKey_FieldOrder(t *testing.T) {
	key := accesspolicy.RuleKey(
		domain.RoleGenericCaseworker,
		domain.CaseStatusOpen,
		domain.DocTypeSmart,
		domain.ParentNone,
		domain.CreatorNone,
		domain.ActionCreate,
	)
	assert.Equal(t, "generic-caseworker:open:smart-document:none:none:create", key)
}

func TestParseRuleTable_Valid(t *testing.T) {
	data := strings.Join([]string{
		"generic-caseworker:open:smart-document:none:none:create,not-assigned",
		"assigned-caseworker:with-caseworker:smart-document:none:caseworker-system:write,allowed",
	}, "\n")

	table, err := accesspolicy.ParseRuleTable([]byte(data))

	assert.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	outcome, ok := table.Lookup("generic-caseworker:open:smart-document:none:none:create")
	assert.True(t, ok)
	assert.Equal(t, domain.OutcomeNotAssigned, outcome)
}

func TestParseRuleTable_UnknownOutcome(t *testing.T) {
	data := "generic-caseworker:open:smart-document:none:none:create,maybe"

	_, err := accesspolicy.ParseRuleTable([]byte(data))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown outcome")
	assert.Contains(t, err.Error(), "line 1")
}

func TestParseRuleTable_MalformedLine(t *testing.T) {
	data := strings.Join([]string{
		"generic-caseworker:open:smart-document:none:none:create,not-assigned",
		"this-line-has-no-outcome",
	}, "\n")

	_, err := accesspolicy.ParseRuleTable([]byte(data))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseRuleTable_Empty(t *testing.T) {
	_, err := accesspolicy.ParseRuleTable(nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestRuleTable_MissingKey(t *testing.T) {
	table, err := accesspolicy.ParseRuleTable([]byte("generic-caseworker:open:smart-document:none:none:create,not-assigned"))
	assert.NoError(t, err)

	_, ok := table.Lookup("no:such:key:at:all:write")
	assert.False(t, ok)
}

func TestStore_LoadEmbeddedDataset(t *testing.T) {
	table, err := accesspolicy.NewStore().Load("")

	assert.NoError(t, err)
	// Full cross product: 5 roles x 8 statuses x 5 types x 4 parents x
	// 4 creators x 6 actions.
	assert.Equal(t, 19200, table.Len())

	outcome, ok := table.Lookup("generic-caseworker:open:smart-document:none:none:create")
	assert.True(t, ok)
	assert.Equal(t, domain.OutcomeNotAssigned, outcome)
}

func TestStore_SecondLoadKeepsExistingTable(t *testing.T) {
	store := accesspolicy.NewStore()

	first, err := store.Load("")
	assert.NoError(t, err)

	second, err := store.Load("")
	assert.NoError(t, err)
	assert.Same(t, first, second)
}

func TestStore_LoadMissingFile(t *testing.T) {
	_, err := accesspolicy.NewStore().Load("/nonexistent/rules.csv")

	assert.Error(t, err)
}

func TestStore_EveryOutcomeIsReachable(t *testing.T) {
	table, err := accesspolicy.NewStore().Load("")
	assert.NoError(t, err)

	seen := make(map[domain.Outcome]bool)
	table.Each(func(_ string, outcome domain.Outcome) {
		seen[outcome] = true
	})

	for name, outcome := range domain.Outcomes {
		assert.True(t, seen[outcome], "outcome %s never appears in the dataset", name)
	}
}
