package model

// GameStatus is derived from on-chain flags every time a game is read.
type GameStatus string

// GameMetadata is the off-chain document referenced by metadataURI().
type GameMetadata struct {
	Title            string   `mapstructure:"title" json:"title"`
	OrganisationName string   `mapstructure:"organisationName" json:"organisation_name"`
	Description      string   `mapstructure:"description" json:"description"`
	About            string   `mapstructure:"about" json:"about"`
	Story            string   `mapstructure:"story" json:"story"`
	HeroImages       []string `mapstructure:"heroImages" json:"hero_images"`
	Images           []string `mapstructure:"images" json:"images"`

	Extra map[string]any `mapstructure:",remain" json:"extra,omitempty"`
}

type Game struct {
	GameMetadata

	ID           string     `json:"id"`
	Organisation string     `json:"organisation"`
	Status       GameStatus `json:"status"`

	// Entries is the number of participants so far, TotalParticipants is the goal.
	Entries           string `json:"entries"`
	TotalParticipants string `json:"total_participants"`

	CostPerEntry string `json:"cost_per_entry"`
	Goal         string `json:"goal"`

	TotalEndorsers   string `json:"total_endorsers"`
	CurrentEndorsers string `json:"current_endorsers"`
	Endorsed         bool   `json:"endorsed"`
}

type GetGamesRequest struct {
	Status       string `json:"status" form:"status"`
	Organisation string `json:"organisation" form:"organisation"`
}

type GetGamesResponse struct {
	Games []Game `json:"games"`
}

type GetGameRequest struct {
	ID string `json:"id" form:"id"`
}

type GetGameResponse struct {
	Game Game `json:"game"`
}

type JoinGameRequest struct {
	ID string `json:"id"`
}

type JoinGameResponse struct {
	Game    Game   `json:"game"`
	TxHash  string `json:"tx_hash"`
	Message string `json:"message"`
}

type EndorseGameRequest struct {
	ID string `json:"id"`
}

type EndorseGameResponse struct {
	Game    Game   `json:"game"`
	TxHash  string `json:"tx_hash"`
	Message string `json:"message"`
}
