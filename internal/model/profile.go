package model

// Profile holds the account's editable identity fields. Email is fixed at
// registration and never sent back on update.
type Profile struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// ProfileUpdate is the mutable subset accepted by the profile endpoint.
type ProfileUpdate struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatarUrl"`
}

func (p Profile) Update() ProfileUpdate {
	return ProfileUpdate{Name: p.Name, Phone: p.Phone, AvatarURL: p.AvatarURL}
}

// Apply merges accepted edits back into the profile. Email is untouched.
func (p Profile) Apply(u ProfileUpdate) Profile {
	p.Name = u.Name
	p.Phone = u.Phone
	if u.AvatarURL != "" {
		p.AvatarURL = u.AvatarURL
	}
	return p
}
