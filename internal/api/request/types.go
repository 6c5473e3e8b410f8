package request

// CheckPasswordRequest is the request body for checking a password.
// A missing password field is treated as the empty string.
type CheckPasswordRequest struct {
	Password string `json:"password"`
}
