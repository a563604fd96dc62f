package model

import (
	"strings"
	"time"
)

type Rule string

const (
	RuleNone    Rule = "NONE"
	RuleDaily   Rule = "DAILY"
	RuleWeekly  Rule = "WEEKLY"
	RuleMonthly Rule = "MONTHLY"
)

func (r Rule) IsValid() bool {
	switch r {
	case RuleNone, RuleDaily, RuleWeekly, RuleMonthly:
		return true
	default:
		return false
	}
}

// ParseRule maps a rule name to a recurrence rule, case-insensitively.
// Unknown names decode to None rather than failing the record.
func ParseRule(name string) Rule {
	r := Rule(strings.ToUpper(strings.TrimSpace(name)))
	if !r.IsValid() {
		return RuleNone
	}
	return r
}

// NextOccurrence advances a due instant by one rule interval and truncates
// the result to local midnight. A nil due date or the None rule yields nil.
//
// Month arithmetic follows time.AddDate normalization: Jan 31 plus one month
// rolls into early March instead of clamping to Feb 28/29.
func (r Rule) NextOccurrence(due *time.Time) *time.Time {
	if due == nil || r == RuleNone || !r.IsValid() {
		return nil
	}
	var next time.Time
	switch r {
	case RuleDaily:
		next = due.AddDate(0, 0, 1)
	case RuleWeekly:
		next = due.AddDate(0, 0, 7)
	case RuleMonthly:
		next = due.AddDate(0, 1, 0)
	}
	next = StartOfDay(next)
	return &next
}
