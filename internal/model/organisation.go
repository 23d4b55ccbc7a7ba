package model

// OrganisationMetadata is the off-chain document referenced by tokenURI(id).
type OrganisationMetadata struct {
	Name        string   `mapstructure:"name" json:"name"`
	Description string   `mapstructure:"description" json:"description"`
	Logo        string   `mapstructure:"logo" json:"logo"`
	Website     string   `mapstructure:"website" json:"website"`
	HeroImages  []string `mapstructure:"heroImages" json:"hero_images"`
	Images      []string `mapstructure:"images" json:"images"`

	Extra map[string]any `mapstructure:",remain" json:"extra,omitempty"`
}

type Organisation struct {
	OrganisationMetadata

	ID    string `json:"id"`
	Owner string `json:"owner"`
}

type GetOrganisationsRequest struct{}

type GetOrganisationsResponse struct {
	Organisations []Organisation `json:"organisations"`
}

type GetOrganisationRequest struct {
	ID string `json:"id" form:"id"`
}

type GetOrganisationResponse struct {
	Organisation Organisation `json:"organisation"`
	Games        []Game       `json:"games,omitempty"`
}
