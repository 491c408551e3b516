package dto

type AuthenticateRequest struct {
	Password string `json:"password"`
}

type AuthenticateResponse struct {
	Success    bool   `json:"success"`
	Token      string `json:"token"`
	FamilyName string `json:"familyName"`
}

type CheckAuthResponse struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	FamilyName      string `json:"familyName"`
}
