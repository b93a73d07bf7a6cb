package request

type OAuthCallbackQuery struct {
	Code  string `form:"code"`
	State string `form:"state"`
	// set by the provider when the user denies consent
	Error string `form:"error"`
}
