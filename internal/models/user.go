package models

// UserSession is the single current logged-in identity. At most one exists
// at a time; it is owned by the session store and persisted across restarts.
type UserSession struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
