package category

import (
	"errors"
	"testing"
)

func TestNewSeedsBuiltins(t *testing.T) {
	r := New(nil)
	if r.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", r.Len())
	}
	if got := r.Active().Name; got != "Alimentação" {
		t.Errorf("Active() = %q, want second built-in %q", got, "Alimentação")
	}
}

func TestActiveDefaultSingleCategory(t *testing.T) {
	r := New(Builtin()[:1])
	if got := r.Active().Name; got != "Moradia" {
		t.Errorf("Active() = %q, want %q", got, "Moradia")
	}
}

func TestAddAssignsPaletteColor(t *testing.T) {
	r := New(nil)
	cat, err := r.Add("Cartão de Crédito")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if cat == nil {
		t.Fatal("Add returned nil category")
	}
	// 10 built-ins, so the first custom category wraps to palette[0].
	if cat.Color != "#10b981" {
		t.Errorf("Color = %q, want %q", cat.Color, "#10b981")
	}
	if cat.IconKey != "Custom" {
		t.Errorf("IconKey = %q, want Custom", cat.IconKey)
	}
	if got := r.Active().Name; got != "Cartão de Crédito" {
		t.Errorf("Active() = %q, want newly added category", got)
	}
}

func TestAddDuplicateCaseInsensitive(t *testing.T) {
	r := New(nil)
	if _, err := r.Add("Lazer"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Add(Lazer) err = %v, want ErrDuplicate", err)
	}
	if _, err := r.Add("lazer "); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Add(\"lazer \") err = %v, want ErrDuplicate", err)
	}
	if r.Len() != 10 {
		t.Errorf("Len() = %d after rejected adds, want 10", r.Len())
	}
}

func TestAddSequentialDuplicate(t *testing.T) {
	r := New(nil)
	if _, err := r.Add("Viagem"); err != nil {
		t.Fatalf("Add(Viagem): %v", err)
	}
	if _, err := r.Add("viagem "); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Add(\"viagem \") err = %v, want ErrDuplicate", err)
	}
}

func TestAddEmptyIsNoOp(t *testing.T) {
	r := New(nil)
	cat, err := r.Add("   ")
	if err != nil {
		t.Fatalf("Add blank: unexpected error %v", err)
	}
	if cat != nil {
		t.Errorf("Add blank returned %+v, want nil", cat)
	}
	if r.Len() != 10 {
		t.Errorf("Len() = %d, want 10", r.Len())
	}
}

func TestSetActive(t *testing.T) {
	r := New(nil)
	if !r.SetActive("contas fixas") {
		t.Fatal("SetActive(contas fixas) = false, want true")
	}
	if got := r.Active().Name; got != "Contas Fixas" {
		t.Errorf("Active() = %q, want Contas Fixas", got)
	}
	if r.SetActive("Inexistente") {
		t.Error("SetActive(Inexistente) = true, want false")
	}
	if got := r.Active().Name; got != "Contas Fixas" {
		t.Errorf("Active() changed to %q after failed SetActive", got)
	}
}

func TestLookup(t *testing.T) {
	r := New(nil)
	if _, ok := r.Lookup("SAÚDE"); !ok {
		t.Error("Lookup(SAÚDE) = false, want true")
	}
	if _, ok := r.Lookup("nada"); ok {
		t.Error("Lookup(nada) = true, want false")
	}
}
