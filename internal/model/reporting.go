package model

import "time"

type Reporting struct {
	MoneyRaised      string `json:"money_raised"`
	MoneyRaisedRaw   string `json:"money_raised_raw"`
	TicketsPurchased string `json:"tickets_purchased"`
	Organisations    int    `json:"organisations"`
	GamesPlayed      int    `json:"games_played"`
}

type GetReportingRequest struct{}

type GetReportingResponse struct {
	Reporting Reporting `json:"reporting"`
}

type ReportingHistoryItem struct {
	Reporting
	CreatedAt time.Time `json:"created_at"`
}

type GetReportingHistoryRequest struct {
	Limit int `json:"limit" form:"limit"`
}

type GetReportingHistoryResponse struct {
	History []ReportingHistoryItem `json:"history"`
}
