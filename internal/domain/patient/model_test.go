package patient

import "testing"

func str(s string) *string { return &s }

func TestPreferredFields_CoalesceLegacyColumns(t *testing.T) {
	p := &Patient{
		GivenName:   str("Ada"),
		FamilyName:  str("Lovelace"),
		PhoneMobile: str("+1-555-0100"),
	}

	if got := p.PreferredFirstName(); got == nil || *got != "Ada" {
		t.Errorf("expected legacy given_name to resolve, got %v", got)
	}
	if got := p.PreferredLastName(); got == nil || *got != "Lovelace" {
		t.Errorf("expected legacy family_name to resolve, got %v", got)
	}
	if got := p.PreferredPhone(); got == nil || *got != "+1-555-0100" {
		t.Errorf("expected legacy phone_mobile to resolve, got %v", got)
	}
}

func TestPreferredFields_CurrentColumnsWin(t *testing.T) {
	p := &Patient{
		FirstName: str("Grace"),
		GivenName: str("Ada"),
		Phone:     str("+1-555-0200"),
	}

	if got := p.PreferredFirstName(); got == nil || *got != "Grace" {
		t.Errorf("expected current column to win, got %v", got)
	}
	if got := p.PreferredPhone(); got == nil || *got != "+1-555-0200" {
		t.Errorf("expected current column to win, got %v", got)
	}
}

func TestPreferredFields_BlankTreatedAsMissing(t *testing.T) {
	p := &Patient{FirstName: str("  "), GivenName: str("Ada")}
	if got := p.PreferredFirstName(); got == nil || *got != "Ada" {
		t.Errorf("expected whitespace-only value to be skipped, got %v", got)
	}
}

func TestFullName(t *testing.T) {
	p := &Patient{FirstName: str("Grace"), LastName: str("Hopper")}
	if got := p.FullName(); got == nil || *got != "Grace Hopper" {
		t.Errorf("expected 'Grace Hopper', got %v", got)
	}

	p = &Patient{FirstName: str("Grace")}
	if got := p.FullName(); got == nil || *got != "Grace" {
		t.Errorf("expected single name part, got %v", got)
	}

	p = &Patient{}
	if got := p.FullName(); got != nil {
		t.Errorf("expected nil full name, got %s", *got)
	}
}
