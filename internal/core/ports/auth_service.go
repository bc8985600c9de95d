package ports

import "context"

// RegisterInput carries the fields accepted at registration. FirstName and
// LastName are optional display fields.
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// AuthService orchestrates registration, login and token renewal.
//
// Every successful operation returns a freshly minted token; none of them
// ever returns password material.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (token string, err error)
	Login(ctx context.Context, username, password, ip string) (token string, err error)
	VerifyToken(ctx context.Context, raw string) (token string, err error)
	RefreshToken(ctx context.Context, raw string) (token string, err error)
}
