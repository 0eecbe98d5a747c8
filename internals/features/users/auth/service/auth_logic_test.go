package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// Hash dummy harus bcrypt yang benar-benar bisa di-parse: kalau tidak,
// CompareHashAndPassword langsung return error parse tanpa membakar waktu
// dan jalur "username tidak ditemukan" jadi terukur lewat timing.
func TestDummyPasswordHashWellFormed(t *testing.T) {
	cost, err := bcrypt.Cost(dummyPasswordHash)
	if err != nil {
		t.Fatalf("hash dummy tidak valid: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("cost = %d, want %d", cost, bcrypt.DefaultCost)
	}
	// Compare harus berjalan penuh dan berakhir mismatch, bukan error parse.
	if err := bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte("kata-sandi-apa-saja")); err != bcrypt.ErrMismatchedHashAndPassword {
		t.Errorf("compare = %v, want ErrMismatchedHashAndPassword", err)
	}
}

func TestHashPasswordRoundTrip(t *testing.T) {
	h, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h), []byte("rahasia123")); err != nil {
		t.Errorf("hash tidak cocok dengan password asal: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h), []byte("salah")); err == nil {
		t.Error("password salah tidak boleh cocok")
	}
}
