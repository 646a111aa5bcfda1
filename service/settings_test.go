package service

import (
	"testing"
)

func TestIsSecretKey(t *testing.T) {
	cases := map[string]bool{
		"api_key_openai":  true,
		"api_key_eleven":  true,
		"model_catalog":   false,
		"default_channel": false,
	}
	for key, want := range cases {
		if got := isSecretKey(key); got != want {
			t.Errorf("isSecretKey(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestMaskValue(t *testing.T) {
	if got := maskValue("sk-1234567890"); got != "****7890" {
		t.Errorf("maskValue = %q", got)
	}
	// 短值不能露出任何明文
	if got := maskValue("abc"); got != "****" {
		t.Errorf("maskValue short = %q", got)
	}
}

func TestAppendUnique(t *testing.T) {
	ids := []string{"gpt-4o"}
	ids = appendUnique(ids, "gpt-5-mini")
	ids = appendUnique(ids, "gpt-4o")
	ids = appendUnique(ids, "gpt-5-mini")

	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %v", ids)
	}
	if ids[0] != "gpt-4o" || ids[1] != "gpt-5-mini" {
		t.Errorf("order not preserved: %v", ids)
	}
}
