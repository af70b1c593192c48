package models

import "database/sql"

// User is a row of the users table.
type User struct {
	UserID       string         `db:"user_id"`
	Username     string         `db:"username"`
	PasswordHash string         `db:"password_hash"`
	Name         string         `db:"name"`
	Email        sql.NullString `db:"email"`
	AuditFields
}
