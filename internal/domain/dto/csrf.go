package dto

// CsrfTokenResponse carries a freshly issued CSRF token. The same value is
// also set in the double-submit cookie and the response header.
type CsrfTokenResponse struct {
	Token string `json:"token"`
}
