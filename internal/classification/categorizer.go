// Package classification files imported transactions under a category by
// matching keyword rules against their notes.
package classification

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/Veraticus/snacker/internal/model"
)

// Rule maps a payee pattern to a category for one transaction type.
type Rule struct {
	Name       string
	CategoryID string
	Type       model.TransactionType
	Regex      string
	Priority   int // higher priority rules are checked first
}

type compiledRule struct {
	regex *regexp.Regexp
	Rule
}

// Match is the rule that categorized a transaction.
type Match struct {
	RuleName   string
	CategoryID string
}

// Categorizer applies rules in priority order.
type Categorizer struct {
	rules []compiledRule
	mu    sync.RWMutex
}

// NewCategorizer compiles rules. Patterns are case-insensitive.
func NewCategorizer(rules []Rule) (*Categorizer, error) {
	c := &Categorizer{}
	if err := c.UpdateRules(rules); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateRules replaces the rule set.
func (c *Categorizer) UpdateRules(rules []Rule) error {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		if !r.Type.Valid() {
			return fmt.Errorf("rule %s: %w", r.Name, model.ErrInvalidType)
		}
		expr := r.Regex
		if !strings.HasPrefix(expr, "(?i)") {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return fmt.Errorf("failed to compile rule %s: %w", r.Name, err)
		}
		compiled = append(compiled, compiledRule{Rule: r, regex: re})
	}

	sort.SliceStable(compiled, func(i, j int) bool {
		return compiled[i].Priority > compiled[j].Priority
	})

	c.mu.Lock()
	c.rules = compiled
	c.mu.Unlock()
	return nil
}

// RuleCount returns the number of loaded rules.
func (c *Categorizer) RuleCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rules)
}

// Categorize returns the first rule of t's type whose pattern matches t's notes.
func (c *Categorizer) Categorize(t model.Transaction) (Match, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, r := range c.rules {
		if r.Type != t.Type {
			continue
		}
		if r.regex.MatchString(t.Notes) {
			return Match{RuleName: r.Name, CategoryID: r.CategoryID}, true
		}
	}
	return Match{}, false
}

// Apply re-files transactions still in the "Other" fallback of their type.
// A rule only applies when its category exists in categories with the same
// type. It returns the updated copies and how many were re-filed.
func (c *Categorizer) Apply(ctx context.Context, txns []model.Transaction, categories []model.Category) ([]model.Transaction, int, error) {
	out := make([]model.Transaction, len(txns))
	copy(out, txns)

	changed := 0
	for i, t := range out {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		if t.CategoryID != fallbackCategory(t.Type) {
			continue
		}
		m, ok := c.Categorize(t)
		if !ok {
			continue
		}
		cat, ok := model.FindCategory(categories, m.CategoryID)
		if !ok || cat.Type != t.Type {
			continue
		}
		out[i].CategoryID = cat.ID
		changed++
	}
	return out, changed, nil
}

func fallbackCategory(t model.TransactionType) string {
	if t == model.TypeIncome {
		return model.CategoryOtherIncome
	}
	return model.CategoryOtherExpense
}
