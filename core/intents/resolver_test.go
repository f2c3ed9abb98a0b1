package intents

import "testing"

func TestResolveGreetingKeywords(t *testing.T) {
	resolver := NewDefaultResolver()

	for _, text := range []string{
		"hello there",
		"well hi!",
		"hey, how are you",
		"greetings traveller",
	} {
		if got := resolver.Resolve(text); got != DefaultGreetingAsset {
			t.Fatalf("expected %q for %q, got %q", DefaultGreetingAsset, text, got)
		}
	}
}

func TestResolveNormalizesCaseAndWhitespace(t *testing.T) {
	resolver := NewDefaultResolver()

	if got := resolver.Resolve("  HELLO There  "); got != DefaultGreetingAsset {
		t.Fatalf("expected %q, got %q", DefaultGreetingAsset, got)
	}
}

func TestResolveFallsBackWhenNothingMatches(t *testing.T) {
	resolver := NewResolver([]Rule{
		{Keywords: []string{"weather"}, Asset: "weather.wav"},
	}, "fallback.wav")

	if got := resolver.Resolve("tell me a joke"); got != "fallback.wav" {
		t.Fatalf("expected fallback.wav, got %q", got)
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	resolver := NewResolver([]Rule{
		{Keywords: []string{"hello"}, Asset: "first.wav"},
		{Keywords: []string{"hello", "hi"}, Asset: "second.wav"},
	}, "fallback.wav")

	if got := resolver.Resolve("hello hi"); got != "first.wav" {
		t.Fatalf("expected first.wav, got %q", got)
	}
}

func TestNewResolverCopiesRuleTable(t *testing.T) {
	rules := []Rule{{Keywords: []string{"hello"}, Asset: "original.wav"}}
	resolver := NewResolver(rules, "fallback.wav")

	rules[0].Asset = "mutated.wav"

	if got := resolver.Resolve("hello"); got != "original.wav" {
		t.Fatalf("expected original.wav after caller mutation, got %q", got)
	}
}
