package stubhub

import "time"

// Session holds the per-user credentials issued by Login.
type Session struct {
	AccessToken  string `json:"access_token" yaml:"access_token"`
	RefreshToken string `json:"refresh_token" yaml:"refresh_token"`
	// ExpiresIn is the access token lifetime in seconds as reported by the
	// login endpoint.
	ExpiresIn int64  `json:"expires_in" yaml:"expires_in"`
	UserID    string `json:"user_id" yaml:"user_id"`
	// IssuedAt is stamped by the client when Login succeeds. The marketplace
	// does not send it.
	IssuedAt time.Time `json:"issued_at" yaml:"issued_at"`
}

// Authenticated reports whether the session carries an access token.
func (s Session) Authenticated() bool {
	return s.AccessToken != ""
}

// ExpiresAt returns the instant the access token lapses. The zero time is
// returned when either IssuedAt or ExpiresIn is unknown.
func (s Session) ExpiresAt() time.Time {
	if s.IssuedAt.IsZero() || s.ExpiresIn <= 0 {
		return time.Time{}
	}
	return s.IssuedAt.Add(time.Duration(s.ExpiresIn) * time.Second)
}

// ExpiresWithin reports whether the access token lapses within d of now.
// Sessions with an unknown expiry never report as expiring.
func (s Session) ExpiresWithin(now time.Time, d time.Duration) bool {
	exp := s.ExpiresAt()
	if exp.IsZero() {
		return false
	}
	return !now.Add(d).Before(exp)
}
