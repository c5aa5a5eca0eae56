package entity

const AnonymousName = "Anonymous"

// Profile - a registered user shown in the lobby list.
type Profile struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Online   bool   `json:"online"`
}

func (that *Profile) DisplayName() string {
	if that.FullName == "" {
		return AnonymousName
	}
	return that.FullName
}
