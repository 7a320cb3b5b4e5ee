package textedit_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/textedit"
)

func TestTextBufferInsertDelete(t *testing.T) {
	b := textedit.NewTextBuffer(16)

	if err := b.Insert(0, "world"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := b.Insert(0, "hello "); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got := b.String(); got != "hello world" {
		t.Errorf("String() = %q, want %q", got, "hello world")
	}

	if err := b.Delete(5, 11); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := b.String(); got != "hello" {
		t.Errorf("after delete = %q, want %q", got, "hello")
	}
}

func TestTextBufferOffsetsAreRunes(t *testing.T) {
	b := textedit.NewTextBuffer(10)
	if err := b.SetText("héllo"); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 5 {
		t.Errorf("Len() = %d, want 5", b.Len())
	}
	if got := b.Slice(1, 2); got != "é" {
		t.Errorf("Slice(1,2) = %q, want %q", got, "é")
	}
}

func TestTextBufferCapacity(t *testing.T) {
	b := textedit.NewTextBuffer(5)
	if err := b.SetText("abcd"); err != nil {
		t.Fatal(err)
	}

	err := b.Insert(4, "ef")
	if !errors.Is(err, textedit.ErrCapacityExceeded) {
		t.Fatalf("Insert over capacity: err = %v, want ErrCapacityExceeded", err)
	}
	if got := b.String(); got != "abcd" {
		t.Errorf("buffer changed on rejected insert: %q", got)
	}

	if err := b.Insert(4, "e"); err != nil {
		t.Fatalf("Insert to exactly capacity: %v", err)
	}
	if b.Len() != b.MaxLength() {
		t.Errorf("Len() = %d, want %d", b.Len(), b.MaxLength())
	}

	if err := b.SetText("abcdef"); !errors.Is(err, textedit.ErrCapacityExceeded) {
		t.Errorf("SetText over capacity: err = %v", err)
	}
	if got := b.String(); got != "abcde" {
		t.Errorf("buffer changed on rejected SetText: %q", got)
	}
}

func TestTextBufferReplaceIsAtomic(t *testing.T) {
	b := textedit.NewTextBuffer(8)
	if err := b.SetText("abcdef"); err != nil {
		t.Fatal(err)
	}

	// removes 2, adds 5: 9 > 8
	err := b.Replace(1, 3, "12345")
	if !errors.Is(err, textedit.ErrCapacityExceeded) {
		t.Fatalf("Replace: err = %v, want ErrCapacityExceeded", err)
	}
	if got := b.String(); got != "abcdef" {
		t.Errorf("buffer changed on rejected Replace: %q", got)
	}

	// removes 2, adds 4: 8 fits
	if err := b.Replace(1, 3, "1234"); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if got := b.String(); got != "a1234def" {
		t.Errorf("String() = %q, want %q", got, "a1234def")
	}
}

func TestTextBufferInvalidOffset(t *testing.T) {
	b := textedit.NewTextBuffer(0)
	if b.MaxLength() != textedit.DefaultMaxLength {
		t.Errorf("MaxLength() = %d, want default %d", b.MaxLength(), textedit.DefaultMaxLength)
	}
	_ = b.SetText("abc")

	tests := []struct {
		name string
		fn   func() error
	}{
		{"insert negative", func() error { return b.Insert(-1, "x") }},
		{"insert past end", func() error { return b.Insert(4, "x") }},
		{"delete reversed", func() error { return b.Delete(2, 1) }},
		{"delete past end", func() error { return b.Delete(0, 4) }},
		{"replace out of range", func() error { return b.Replace(-1, 2, "x") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, textedit.ErrInvalidOffset) {
				t.Errorf("err = %v, want ErrInvalidOffset", err)
			}
			if got := b.String(); got != "abc" {
				t.Errorf("buffer changed: %q", got)
			}
		})
	}
}

func TestTextBufferSliceClamps(t *testing.T) {
	b := textedit.NewTextBuffer(10)
	_ = b.SetText("abc")
	if got := b.Slice(-5, 50); got != "abc" {
		t.Errorf("Slice(-5,50) = %q", got)
	}
	if got := b.Slice(2, 1); got != "b" {
		t.Errorf("Slice(2,1) = %q, want %q", got, "b")
	}
}
