package models

// Session is the client-held identity asserted by the signed cookie. The
// server never persists it; the cookie itself is the only record.
type Session struct {
	UserID     string `json:"userId"`
	Username   string `json:"username"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}

// AnonymousSession is the fixed value returned to callers without a valid
// session cookie.
func AnonymousSession() Session {
	return Session{UserID: "", Username: "", IsLoggedIn: false}
}
