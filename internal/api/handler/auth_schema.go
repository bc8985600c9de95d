package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses that are not field-addressable.
type errorResponse struct {
	Error string `json:"error"`
}

// fieldErrorsResponse maps each offending request field to its messages.
type fieldErrorsResponse struct {
	Errors map[string][]string `json:"errors"`
}

type registerRequest struct {
	Username  string `json:"username"   validate:"required"`
	Password  string `json:"password"   validate:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// tokenResponse carries the minted token. It is the only success payload of
// the unauthenticated surface; no user or password material is ever included.
type tokenResponse struct {
	Token string `json:"token"`
}
