package dto

// LoginRequest credenciales de la pantalla de login. El operador
// administrador envía password; cualquier otro usuario envía phone_number.
type LoginRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// LoginResponse token de sesión y datos básicos.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
