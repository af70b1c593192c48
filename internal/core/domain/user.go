package domain

// User is a back-office administrator.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	AuditFields
}
