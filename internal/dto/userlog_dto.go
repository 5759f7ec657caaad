package dto

type LogSesionResponse struct {
	ID        string `json:"id"`
	UsuarioID string `json:"usuario_id"`
	UserAgent string `json:"user_agent"`
	IPAddress string `json:"ip_address"`
	LoginDate string `json:"login_date"`
}
