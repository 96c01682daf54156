package models

// Group mirrors the upstream group object.
type Group struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	CreatedBy int    `json:"created_by,omitempty"`
}

// GroupMember is the canonical member shape used inside the core. The
// upstream API returns two historical shapes ("id" vs "userId"); both are
// normalized into UserID at the boundary before anything else sees them.
type GroupMember struct {
	UserID   int    `json:"userId"`
	Username string `json:"username,omitempty"`
}
