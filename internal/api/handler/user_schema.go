package handler

// updateProfileRequest carries a profile change. Fields are pointers so a
// PATCH can distinguish "absent" from "set to empty".
type updateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// profileResponse is the authenticated view of the caller's own record. The
// password hash has no representation here at all.
type profileResponse struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type probeResponse struct {
	OK bool `json:"ok"`
}
