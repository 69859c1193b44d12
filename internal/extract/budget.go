// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tobrien/trip-engine/pkg/types"
)

// budgetAmountPatterns are tried in order; the first match wins. Amounts
// may carry thousands separators and cents: $1000, 1,000 dollars, 1000$,
// 1000 usd, budget 1000, 1000 budget.
var budgetAmountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$(\d+(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(\d+(?:,\d{3})*(?:\.\d{2})?)\s*dollars?`),
	regexp.MustCompile(`(\d+(?:,\d{3})*(?:\.\d{2})?)\s*\$`),
	regexp.MustCompile(`(\d+(?:,\d{3})*(?:\.\d{2})?)\s*usd`),
	regexp.MustCompile(`budget\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(\d+(?:,\d{3})*(?:\.\d{2})?)\s*budget`),
}

// tierKeywords maps budget-preference vocabulary to tiers.
var tierKeywords = map[types.BudgetTier][]string{
	types.TierBudget:   {"cheap", "economy", "budget-friendly", "low cost"},
	types.TierModerate: {"moderate", "mid-range", "mid range", "standard"},
	types.TierLuxury:   {"luxury", "premium", "high-end", "high end", "upscale"},
}

// ExtractBudgetAmount returns the explicit dollar figure named in the
// message, or false when none of the patterns match.
func ExtractBudgetAmount(message string) (float64, bool) {
	lower := strings.ToLower(message)

	for _, pattern := range budgetAmountPatterns {
		m := pattern.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		return amount, true
	}

	return 0, false
}

// ExtractBudgetTier returns the coarse budget preference named in the
// message. A bare "budget" only counts when no dollar figure follows it,
// so "budget $1000" stays an amount rather than a tier.
func ExtractBudgetTier(message string) (types.BudgetTier, bool) {
	lower := strings.ToLower(message)

	for _, tier := range []types.BudgetTier{types.TierLuxury, types.TierModerate, types.TierBudget} {
		for _, kw := range tierKeywords[tier] {
			if strings.Contains(lower, kw) {
				return tier, true
			}
		}
	}

	if strings.Contains(lower, "budget") {
		if _, hasAmount := ExtractBudgetAmount(lower); !hasAmount {
			return types.TierBudget, true
		}
	}

	return "", false
}
