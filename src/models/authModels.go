package models

// AuthContext is the caller's identity and role, built once by the auth
// middleware and passed explicitly to every service and upstream call. The
// source system read these from ambient browser storage; here nothing is
// ambient.
type AuthContext struct {
	UserID   int
	Username string
	Role     string
}

// Staff reports whether the caller may use the administrative surfaces
// (reports, user management, collection mutation).
func (a AuthContext) Staff() bool {
	return a.Role == "admin" || a.Role == "staff"
}

// Admin reports whether the caller holds the admin role.
func (a AuthContext) Admin() bool {
	return a.Role == "admin"
}
