package models

// API token scopes, one read and one write scope per resource
const (
	ScopeRecipeRead    = "recipes.readonly"
	ScopeRecipeWrite   = "recipes"
	ScopeListRead      = "lists.readonly"
	ScopeListWrite     = "lists"
	ScopeSettingsRead  = "settings.readonly"
	ScopeSettingsWrite = "settings"
	ScopeAuditRead     = "audits.readonly"
	ScopeAuditWrite    = "audits"
	ScopeSharesRead    = "shares.readonly"
	ScopeSharesWrite   = "shares"
)

type ApiToken struct {
	Meta
	Name      string   `json:"name"`
	Value     string   `json:"value"`
	Scopes    []string `json:"scopes"`
	ExpiresIn string   `json:"expiresIn,omitempty"`
}

type ApiTokenUpdate struct {
	Name      *string  `json:"name,omitempty" validate:"omitnil,min=1"`
	Scopes    []string `json:"scopes,omitempty" validate:"dive,oneof=recipes.readonly recipes lists.readonly lists settings.readonly settings audits.readonly audits shares.readonly shares"`
	ExpiresIn *string  `json:"expiresIn,omitempty"`
}
