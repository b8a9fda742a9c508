package bib

import "testing"

func TestBraceBalancer_SingleLine(t *testing.T) {
	var b braceBalancer
	consumed, leftover, err := b.consume("@a{x, t={1}} tail")
	if err != nil {
		t.Fatalf("consume() error = %v", err)
	}
	if consumed != "@a{x, t={1}}" {
		t.Errorf("consumed = %q", consumed)
	}
	if leftover != " tail" {
		t.Errorf("leftover = %q", leftover)
	}
	if !b.balanced() {
		t.Error("balancer not balanced after closing brace")
	}
}

func TestBraceBalancer_AcrossLines(t *testing.T) {
	var b braceBalancer
	if _, _, err := b.consume("@a{x,"); err != nil {
		t.Fatalf("consume() error = %v", err)
	}
	if b.balanced() {
		t.Fatal("balanced too early")
	}
	if _, _, err := b.consume("t = {nested {deep}}"); err != nil {
		t.Fatalf("consume() error = %v", err)
	}
	if b.balanced() {
		t.Fatal("balanced before the final brace")
	}
	consumed, leftover, err := b.consume("}")
	if err != nil {
		t.Fatalf("consume() error = %v", err)
	}
	if consumed != "}" || leftover != "" {
		t.Errorf("consumed = %q, leftover = %q", consumed, leftover)
	}
	if !b.balanced() {
		t.Error("not balanced at end of entry")
	}
}

func TestBraceBalancer_NotBalancedBeforeFirstOpen(t *testing.T) {
	var b braceBalancer
	if b.balanced() {
		t.Fatal("fresh balancer reports balanced")
	}
	// An escaped brace is not an opening brace.
	if _, _, err := b.consume(`@a\{x`); err != nil {
		t.Fatalf("consume() error = %v", err)
	}
	if b.balanced() {
		t.Error("balanced with no unescaped opening brace seen")
	}
}

func TestBraceBalancer_CloseBeforeOpen(t *testing.T) {
	var b braceBalancer
	if _, _, err := b.consume("} oops"); err == nil {
		t.Error("consume() accepted a close before any open")
	}
}

func TestBraceBalancer_EscapedBraces(t *testing.T) {
	var b braceBalancer
	consumed, _, err := b.consume(`@a{x, n = {a \{ b}}`)
	if err != nil {
		t.Fatalf("consume() error = %v", err)
	}
	if !b.balanced() {
		t.Error("escaped brace moved the depth counter")
	}
	if consumed != `@a{x, n = {a \{ b}}` {
		t.Errorf("consumed = %q", consumed)
	}
}
