package model

type User struct {
	Address    string `json:"address"`
	Authorized bool   `json:"authorized"`
	Balance    string `json:"balance"`
}

type GetBalanceRequest struct{}

type GetBalanceResponse struct {
	User User `json:"user"`
}
