package domain

// UserRecord is a stored account profile keyed by email.
//
// The JSON layout is the on-disk users file format and must stay stable:
// the email is the map key, not a field.
type UserRecord struct {
	Email      string `json:"-"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	Enroll     string `json:"enroll"`
	Mobile     string `json:"mobile"`
	ProfilePic string `json:"profile_pic"`
}

// HasProfilePic reports whether a picture was uploaded at signup.
func (u UserRecord) HasProfilePic() bool {
	return u.ProfilePic != ""
}

// ProfileUpdate carries the only fields editable after signup.
type ProfileUpdate struct {
	Name   string
	Enroll string
	Mobile string
}

// Apply copies the editable fields onto the record. Email, password and
// profile picture are left untouched.
func (p ProfileUpdate) Apply(u UserRecord) UserRecord {
	u.Name = p.Name
	u.Enroll = p.Enroll
	u.Mobile = p.Mobile
	return u
}
