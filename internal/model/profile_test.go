package model

import "testing"

func TestProfileUpdateExtractsEditableFields(t *testing.T) {
	p := Profile{ID: "u1", Name: "Ada", Email: "ada@example.com", Phone: "555", AvatarURL: "https://a/x.png"}
	u := p.Update()
	if u.Name != "Ada" || u.Phone != "555" || u.AvatarURL != "https://a/x.png" {
		t.Fatalf("unexpected update payload: %+v", u)
	}
}

func TestProfileApplyKeepsEmail(t *testing.T) {
	p := Profile{Name: "Ada", Email: "ada@example.com", Phone: "555", AvatarURL: "https://a/x.png"}

	got := p.Apply(ProfileUpdate{Name: "Ada L.", Phone: "556"})
	if got.Name != "Ada L." || got.Phone != "556" {
		t.Fatalf("edits not applied: %+v", got)
	}
	if got.Email != "ada@example.com" {
		t.Fatalf("email must never change, got %q", got.Email)
	}
	if got.AvatarURL != "https://a/x.png" {
		t.Fatalf("empty avatar in update must not clear the stored one, got %q", got.AvatarURL)
	}

	got = p.Apply(ProfileUpdate{Name: "Ada", Phone: "555", AvatarURL: "https://a/y.png"})
	if got.AvatarURL != "https://a/y.png" {
		t.Fatalf("avatar not replaced: %q", got.AvatarURL)
	}
}
