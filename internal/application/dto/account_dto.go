package dto

// RegisterRequest entrada del formulario de registro.
type RegisterRequest struct {
	FirstName string `json:"firstName" form:"firstName"`
	LastName  string `json:"lastName" form:"lastName"`
	Email     string `json:"email" form:"email"`
	Password  string `json:"password" form:"password"`
}

// VerifyEmailRequest entrada de la verificación simulada.
type VerifyEmailRequest struct {
	Email string `json:"email" form:"email"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// LoginResponse token de sesión y cuenta autenticada.
type LoginResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

// AccountRequest alta o edición de cuenta por un Admin. En edición, Password vacío conserva la actual.
type AccountRequest struct {
	FirstName string `json:"firstName" form:"firstName"`
	LastName  string `json:"lastName" form:"lastName"`
	Email     string `json:"email" form:"email"`
	Password  string `json:"password" form:"password"`
	Role      string `json:"role" form:"role"`
	Verified  bool   `json:"verified" form:"verified"`
}

// PasswordResetRequest nueva contraseña.
type PasswordResetRequest struct {
	Password string `json:"password" form:"password"`
}

// AccountResponse salida de una cuenta (sin contraseña).
type AccountResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Verified    bool   `json:"verified"`
}
