// Package intents maps accumulated utterance text to playable audio
// asset names.
package intents

import (
	"strings"

	"github.com/jinzhu/copier"
)

// DefaultGreetingAsset is the canned response played for greetings
// and, for now, for everything else. The single mapping mirrors the
// demo's placeholder policy; grow the rule table to extend it.
const DefaultGreetingAsset = "greetings.wav"

// Rule maps a keyword set to an asset name. A rule matches when any of
// its keywords appears as a substring of the normalized utterance.
type Rule struct {
	Keywords []string
	Asset    string
}

// Resolver resolves utterance text to an asset name by evaluating
// rules in priority order, first match wins, with an explicit fallback
// when nothing matches.
type Resolver struct {
	rules    []Rule
	fallback string
}

// NewResolver builds a resolver over the given rule table. The table
// is copied so later mutation by the caller cannot change resolution.
func NewResolver(rules []Rule, fallback string) *Resolver {
	resolver := &Resolver{fallback: fallback}
	copier.Copy(&resolver.rules, &rules)
	return resolver
}

// NewDefaultResolver returns the demo policy: greetings map to the
// greeting asset, and so does everything else.
func NewDefaultResolver() *Resolver {
	return NewResolver([]Rule{
		{Keywords: []string{"hello", "hi", "hey", "greetings"}, Asset: DefaultGreetingAsset},
	}, DefaultGreetingAsset)
}

// Resolve lower-cases and trims the utterance and returns the asset
// name of the first matching rule, or the fallback.
func (r *Resolver) Resolve(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	for _, rule := range r.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(normalized, keyword) {
				return rule.Asset
			}
		}
	}
	return r.fallback
}
