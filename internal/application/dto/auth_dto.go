package dto

// EmployeeLoginRequest body para POST /api/auth/empleado. Basta con el nombre:
// el empleado no tiene contraseña, solo identifica quién firma los pesajes.
type EmployeeLoginRequest struct {
	Name string `json:"name"`
}

// AdminLoginRequest body para POST /api/auth/admin.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token de sesión y datos del actor.
type LoginResponse struct {
	Token string `json:"token"`
	Actor string `json:"actor"`
	Role  string `json:"role"`
}
