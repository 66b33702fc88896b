package models

// UserRecord is an account as transmitted by the upstream users endpoint.
type UserRecord struct {
	UserID      int    `json:"user_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	RoleID      int    `json:"role_id"`
	Role        string `json:"role"`
}

// UserPayload is the camelCase body the upstream users endpoint expects on
// create and update. Password is only set when creating.
type UserPayload struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	RoleID      int    `json:"roleId"`
	Password    string `json:"password,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is the upstream answer to a credential check.
type LoginResult struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse is what the gateway hands back to its own caller after a
// successful login: the signed session token plus the identity it carries.
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   int    `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
