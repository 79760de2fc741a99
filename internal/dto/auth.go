package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" example:"j.mwangi"`
	Password string `json:"password" example:"s3cret"`
	Role     string `json:"role" example:"manager"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" example:"j.mwangi"`
	Password string `json:"password" example:"s3cret"`
}

type LoginResponseDTO struct {
	Token string `json:"token"`
}
