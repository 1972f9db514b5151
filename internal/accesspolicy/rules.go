package accesspolicy

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"klagedok/internal/domain"
)

//go:embed ruledata/rules.csv
var ruledata embed.FS

// keySeparator joins the five classification values and the action into a
// composite rule key, in the fixed order
// User:CaseStatus:DocumentType:Parent:Creator:Action.
const keySeparator = ":"

// RuleKey builds the composite lookup key for a classification tuple.
func RuleKey(
	user domain.CaseRole,
	status domain.CaseStatus,
	docType domain.DocumentType,
	parent domain.ParentType,
	creator domain.CreatorRole,
	action domain.DocumentAction,
) string {
	return strings.Join([]string{
		string(user), string(status), string(docType),
		string(parent), string(creator), string(action),
	}, keySeparator)
}

// RuleTable is the immutable decision table mapping composite keys to
// outcomes. Once constructed it is never mutated; lookups are safe from any
// number of goroutines without locking.
type RuleTable struct {
	rules map[string]domain.Outcome
}

// ParseRuleTable parses the line-oriented rule dataset: one rule per line,
// exactly two comma-separated fields, `<key>,<OUTCOME_NAME>`, no header row.
// Parsing fails on any malformed line, on any unrecognized outcome name, and
// on an empty dataset.
func ParseRuleTable(data []byte) (*RuleTable, error) {
	rules := make(map[string]domain.Outcome, bytes.Count(data, []byte{'\n'})+1)

	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			return nil, fmt.Errorf("rule dataset line %d: expected 2 fields, got %d", lineNo, len(fields))
		}
		outcome, ok := domain.Outcomes[fields[1]]
		if !ok {
			return nil, fmt.Errorf("rule dataset line %d: unknown outcome %q", lineNo, fields[1])
		}
		rules[fields[0]] = outcome
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading rule dataset: %w", err)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("rule dataset is empty")
	}
	return &RuleTable{rules: rules}, nil
}

// Lookup returns the outcome for a composite key, if one is defined. A
// missing key is a data gap the evaluator reports as a configuration-gap
// failure, never as a default allow or deny.
func (t *RuleTable) Lookup(key string) (domain.Outcome, bool) {
	o, ok := t.rules[key]
	return o, ok
}

// Len returns the number of rules in the table.
func (t *RuleTable) Len() int {
	return len(t.rules)
}

// Each calls fn for every rule in the table. Iteration order is unspecified.
func (t *RuleTable) Each(fn func(key string, outcome domain.Outcome)) {
	for k, o := range t.rules {
		fn(k, o)
	}
}

// Store loads the rule dataset exactly once per process. The table is built
// fully before it is published; a second Load is a logged no-op that returns
// the originally loaded table, so the process-wide table is never replaced
// mid-flight.
type Store struct {
	once  sync.Once
	table *RuleTable
	err   error
}

// NewStore creates an empty, unloaded Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and parses the rule dataset. With an empty path the embedded
// default dataset is used; otherwise the file at path replaces it. Only the
// first call loads; later calls return the already-published table.
func (s *Store) Load(path string) (*RuleTable, error) {
	first := false
	s.once.Do(func() {
		first = true
		s.table, s.err = loadRuleTable(path)
	})
	if !first && s.err == nil {
		log.Printf("accesspolicy.Store: rule table already loaded (%d rules), keeping existing table", s.table.Len())
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.table, nil
}

// Table returns the loaded table, or nil if Load has not succeeded yet.
func (s *Store) Table() *RuleTable {
	if s.err != nil {
		return nil
	}
	return s.table
}

func loadRuleTable(path string) (*RuleTable, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = ruledata.ReadFile("ruledata/rules.csv")
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("locating rule dataset: %w", err)
	}
	table, err := ParseRuleTable(data)
	if err != nil {
		return nil, err
	}
	log.Printf("accesspolicy.Store: loaded %d access rules", table.Len())
	return table, nil
}
