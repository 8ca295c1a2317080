package auth

// RegisterDTO is the payload accepted by user registration. The "user" field is
// the account email and is the canonical unique identifier; "email" is accepted
// as an alias for older clients that send it instead.
type RegisterDTO struct {
	Name     string `json:"name"`
	User     string `json:"user"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Email    string `json:"email,omitempty"`
}

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

// EmailAddress resolves the canonical email from the two accepted fields.
func (d RegisterDTO) EmailAddress() string {
	if d.User != "" {
		return d.User
	}
	return d.Email
}

// Validate checks required fields and returns a ValidationError on failure.
func (d RegisterDTO) Validate() error {
	if d.Name == "" {
		return ValidationError{Msg: "name is required"}
	}
	if d.EmailAddress() == "" {
		return ValidationError{Msg: "user is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	if d.Role == "" {
		return ValidationError{Msg: "role is required"}
	}
	return nil
}

func (d LoginDTO) Validate() error {
	if d.User == "" {
		return ValidationError{Msg: "user is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}
