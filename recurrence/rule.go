// Package recurrence expands abstract lunisolar event rules into concrete
// calendar dates by matching them against a day-attribute store.
package recurrence

import (
	"time"

	"github.com/google/uuid"
)

// Kind tags the rule variant. Dispatch is a match over this tag; the tag
// already encodes the precedence of an explicit rule type over the
// declared cadence, so generation never re-inspects optional fields to
// decide which path applies.
type Kind int

const (
	KindNone Kind = iota
	KindYearlyLunar
	KindYearlySolar
	KindMonthlyLunar
	KindMonthlySolar
	// KindSolar is the explicit solar-ingress rule type.
	KindSolar
	// KindTithi is the explicit tithi rule type; it generates through the
	// yearly-lunar algorithm regardless of any declared cadence.
	KindTithi
)

// String provides a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindYearlyLunar:
		return "YearlyLunar"
	case KindYearlySolar:
		return "YearlySolar"
	case KindMonthlyLunar:
		return "MonthlyLunar"
	case KindMonthlySolar:
		return "MonthlySolar"
	case KindSolar:
		return "Solar"
	case KindTithi:
		return "Tithi"
	default:
		return "None"
	}
}

// Cadence is the declared repetition of an event definition.
type Cadence string

const (
	CadenceNone         Cadence = "NONE"
	CadenceYearlyLunar  Cadence = "YEARLY_LUNAR"
	CadenceYearlySolar  Cadence = "YEARLY_SOLAR"
	CadenceMonthlyLunar Cadence = "MONTHLY_LUNAR"
	CadenceMonthlySolar Cadence = "MONTHLY_SOLAR"
)

// RuleType is the optional explicit override on an event definition. When
// present it is the authoritative discriminator.
type RuleType string

const (
	RuleTypeNone  RuleType = ""
	RuleTypeSolar RuleType = "SOLAR"
	RuleTypeTithi RuleType = "TITHI"
)

// ResolveKind folds an event definition's rule type and cadence into a
// single tag. An explicit rule type takes precedence over the cadence.
func ResolveKind(ruleType RuleType, cadence Cadence) Kind {
	switch ruleType {
	case RuleTypeSolar:
		return KindSolar
	case RuleTypeTithi:
		return KindTithi
	}
	switch cadence {
	case CadenceYearlyLunar:
		return KindYearlyLunar
	case CadenceYearlySolar:
		return KindYearlySolar
	case CadenceMonthlyLunar:
		return KindMonthlyLunar
	case CadenceMonthlySolar:
		return KindMonthlySolar
	default:
		return KindNone
	}
}

// Rule is the recurrence specification attached to an event definition.
// It is read-only to the engine.
type Rule struct {
	Kind Kind

	// TithiID is the target tithi (1..30) for lunar kinds.
	TithiID int
	// MaasID optionally narrows lunar matches to one month (1..12).
	MaasID int
	// IngressID is the target sankranti sign (1..12) for KindSolar.
	IngressID int

	// AdhikaOnly keeps only leap-month days. IncludeAdhika keeps both
	// leap and regular days. With neither set, leap-month days are
	// excluded: an event normally falls in the regular occurrence of its
	// month, not its leap duplicate.
	AdhikaOnly    bool
	IncludeAdhika bool

	// Template is the externally seeded reference occurrence for the
	// template cadences (KindYearlySolar, KindMonthlySolar). This engine
	// does not compute it.
	Template time.Time
}

// Event pairs a rule with a stable identity for batch generation.
type Event struct {
	ID      uuid.UUID
	Summary string
	Rule    Rule
}

// WindowAdvice suggests how far ahead a caller should generate for a
// given kind. Purely advisory; it performs no I/O.
type WindowAdvice struct {
	YearsAhead  int
	Description string
}

// RecommendedWindow returns the suggested generation horizon per kind.
func RecommendedWindow(k Kind) WindowAdvice {
	switch k {
	case KindYearlyLunar, KindYearlySolar, KindSolar, KindTithi:
		return WindowAdvice{
			YearsAhead:  3,
			Description: "yearly events: generate three cycles ahead",
		}
	case KindMonthlyLunar, KindMonthlySolar:
		return WindowAdvice{
			YearsAhead:  1,
			Description: "monthly events: one year ahead keeps the table small",
		}
	default:
		return WindowAdvice{
			YearsAhead:  0,
			Description: "non-recurring events need no generation window",
		}
	}
}
