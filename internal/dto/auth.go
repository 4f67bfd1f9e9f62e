package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" example:"alice"`
	Password string `json:"password" example:"correct-horse"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" example:"alice"`
	Password string `json:"password" example:"correct-horse"`
}

type AuthResponseDTO struct {
	UserID int    `json:"user_id" example:"1"`
	Role   string `json:"role" example:"user"`
	Token  string `json:"token"`
}
