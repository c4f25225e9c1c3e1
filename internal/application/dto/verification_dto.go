package dto

// SendCodeRequest entrada de /sendVerificationEmail.
type SendCodeRequest struct {
	Email string `json:"email"`
}

// SendCodeResponse salida de /sendVerificationEmail. El código nunca viaja
// en la respuesta: solo por correo. Redirect sugiere "login" cuando el email
// ya tiene cuenta.
type SendCodeResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

// ValidateCodeRequest entrada de /validateCode.
type ValidateCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}
