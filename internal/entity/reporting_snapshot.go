package entity

type ReportingSnapshot struct {
	Base

	Chain            string `gorm:"index"`
	MoneyRaised      string
	MoneyRaisedRaw   string
	TicketsPurchased string
	Organisations    int
	GamesPlayed      int
}
