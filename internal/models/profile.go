package models

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleVDI   Role = "vdi"
)

// Recruit has no lifecycle of its own: it only exists inside its sponsor's profile.
type Recruit struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	JoinDate string `json:"join_date"`
}

type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Role      Role      `json:"role"`
	TeamName  string    `json:"team_name,omitempty"`
	Sponsor   string    `json:"sponsor,omitempty"`
	Recruits  []Recruit `json:"recruits"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileUpdate carries a partial update; nil fields are left untouched.
type ProfileUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	TeamName *string `json:"team_name,omitempty"`
	Sponsor  *string `json:"sponsor,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// Apply merges u into p.
func (u ProfileUpdate) Apply(p Profile) Profile {
	if u.FullName != nil {
		p.FullName = *u.FullName
	}
	if u.TeamName != nil {
		p.TeamName = *u.TeamName
	}
	if u.Sponsor != nil {
		p.Sponsor = *u.Sponsor
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	return p
}

// User is an account of the backend's authentication subsystem.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
