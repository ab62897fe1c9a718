package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is a platform account. Password holds the bcrypt hash and is never
// serialized.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Claims defines the structure of the JWT claims issued at login. The token
// is returned to the caller as data; no route checks it.
type Claims struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
