package siteforge

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	SessionToken string `json:"sessionToken"`
	TeamID       string `json:"teamId"`
}

// Account describes the signed-in user as reported by the server.
type Account struct {
	Email    string `json:"email"`
	TeamID   string `json:"teamId"`
	TeamName string `json:"teamName"`
	SiteURL  string `json:"siteUrl"`
}
