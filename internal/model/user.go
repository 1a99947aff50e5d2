package model

import "time"

// Admin represents a back-office account allowed to manage the catalog and orders
type Admin struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	CreatedAt    time.Time `json:"created_at"`
}

// AdminIdentity is what the auth gate attaches to an authenticated request
type AdminIdentity struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Identity strips the admin down to the fields safe to pass around
func (a *Admin) Identity() AdminIdentity {
	return AdminIdentity{ID: a.ID, Username: a.Username, Name: a.Name}
}

// User represents a customer. Customers have no password; username + phone is the login.
type User struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"created_at"`
}

// AdminSignupRequest is the body of POST /admin/signup
type AdminSignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminCredentials is the body of POST /admin/login and DELETE /admin/delete
type AdminCredentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserCredentials is the body of POST /user/signup and POST /user/login
type UserCredentials struct {
	Username    string `json:"username" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}
