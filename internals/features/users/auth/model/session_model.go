package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Key di durable storage (sama dengan key localStorage versi web)
const (
	KeyAccessToken     = "accessToken"
	KeyRefreshToken    = "refreshToken"
	KeyUser            = "user"
	KeyIsAuthenticated = "isAuthenticated"
)

// SessionState adalah isi session yang tersimpan. Token boleh dalam bentuk sealed.
type SessionState struct {
	AccessToken     string
	RefreshToken    string
	User            json.RawMessage
	IsAuthenticated bool
}

func (s SessionState) IsZero() bool {
	return s.AccessToken == "" && s.RefreshToken == "" && len(s.User) == 0 && !s.IsAuthenticated
}

// UserProfile adalah user object dari /auth/login/.
type UserProfile struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// SessionModel: satu row per profile untuk backend postgres.
type SessionModel struct {
	Profile         string         `gorm:"column:session_profile;type:varchar(64);primaryKey" json:"session_profile"`
	AccessToken     string         `gorm:"column:session_access_token;type:text" json:"-"`
	RefreshToken    string         `gorm:"column:session_refresh_token;type:text" json:"-"`
	User            datatypes.JSON `gorm:"column:session_user;type:jsonb" json:"session_user,omitempty"`
	IsAuthenticated bool           `gorm:"column:session_is_authenticated;not null;default:false" json:"session_is_authenticated"`
	UpdatedAt       time.Time      `gorm:"column:session_updated_at;type:timestamptz;autoUpdateTime" json:"session_updated_at"`
}

// TableName override
func (SessionModel) TableName() string {
	return "client_sessions"
}

func (m SessionModel) ToState() SessionState {
	st := SessionState{
		AccessToken:     m.AccessToken,
		RefreshToken:    m.RefreshToken,
		IsAuthenticated: m.IsAuthenticated,
	}
	if len(m.User) > 0 && string(m.User) != "null" {
		st.User = json.RawMessage(m.User)
	}
	return st
}

func SessionModelFromState(profile string, st SessionState) SessionModel {
	m := SessionModel{
		Profile:         profile,
		AccessToken:     st.AccessToken,
		RefreshToken:    st.RefreshToken,
		IsAuthenticated: st.IsAuthenticated,
	}
	if len(st.User) > 0 {
		m.User = datatypes.JSON(st.User)
	}
	return m
}
