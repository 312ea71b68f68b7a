package dto

import "github.com/vgu-mess/mess-portal/internal/domain"

// SignUpRequest is the signup form. ProfilePic, when sent as a form or JSON
// field, must already be base64 encoded; multipart uploads use the file part
// of the same name instead.
type SignUpRequest struct {
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	Name            string `json:"name" form:"name"`
	Enroll          string `json:"enroll" form:"enroll"`
	Mobile          string `json:"mobile" form:"mobile"`
	ProfilePic      string `json:"profile_pic" form:"profile_pic"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// ProfileUpdateRequest edits the mutable profile fields.
type ProfileUpdateRequest struct {
	Name   string `json:"name" form:"name"`
	Enroll string `json:"enroll" form:"enroll"`
	Mobile string `json:"mobile" form:"mobile"`
}

// ProfileResponse is the public view of a UserRecord. The password is never
// rendered.
type ProfileResponse struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	Enroll        string `json:"enroll"`
	Mobile        string `json:"mobile"`
	HasProfilePic bool   `json:"has_profile_pic"`
}

// SessionResponse describes the caller's session.
type SessionResponse struct {
	State      domain.SessionState `json:"state"`
	LoggedIn   bool                `json:"logged_in"`
	Email      string              `json:"email,omitempty"`
	CurrentDay string              `json:"current_day,omitempty"`
}

// AuthResponse carries the session token for clients that do not keep cookies.
type AuthResponse struct {
	Token string `json:"token"`
}

// NewProfileResponse maps a record to its response.
func NewProfileResponse(u *domain.UserRecord) ProfileResponse {
	return ProfileResponse{
		Email:         u.Email,
		Name:          u.Name,
		Enroll:        u.Enroll,
		Mobile:        u.Mobile,
		HasProfilePic: u.HasProfilePic(),
	}
}
