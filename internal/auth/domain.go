package auth

// Login carries the credential the upstream API hands back on sign-in.
type Login struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}
