package secret

import (
	"bytes"
	"testing"
)

func TestSealOpen(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, 32)
	s, err := NewSealer(key)
	if err != nil {
		t.Fatal(err)
	}

	sealed, err := s.Seal("sk-test-123456")
	if err != nil {
		t.Fatal(err)
	}
	if sealed == "sk-test-123456" {
		t.Fatal("plaintext leaked")
	}

	plain, err := s.Open(sealed)
	if err != nil {
		t.Fatal(err)
	}
	if plain != "sk-test-123456" {
		t.Fatalf("round trip = %q", plain)
	}
}

func TestNewSealer_BadKey(t *testing.T) {
	if _, err := NewSealer([]byte("short")); err == nil {
		t.Fatal("expected error for short key")
	}
}

func TestOpen_Tampered(t *testing.T) {
	s, _ := NewSealer(bytes.Repeat([]byte{0x1}, 32))
	sealed, _ := s.Seal("value")

	if _, err := s.Open("!!!" + sealed); err == nil {
		t.Fatal("expected error for corrupted ciphertext")
	}
}
