package models

// Principal is the identity performing an action, as supplied by the external
// identity provider. A nil *Principal means the action is anonymous.
type Principal struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}
