package models

// Session carries the identity of the calling user for the duration of one
// request. It is built by the session middleware and passed explicitly into
// every service call; no component reads ambient per-user globals.
type Session struct {
	UserID string `json:"userId"`
	Token  string `json:"token,omitempty"`
}
