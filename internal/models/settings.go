package models

// Settings represents application-wide settings
type Settings struct {
	Timezone       string `json:"timezone"`             // IANA timezone name, or "Local" for system timezone
	IdentityURL    string `json:"identity_url"`         // base URL of the hosted identity backend
	ProfileDB      string `json:"profile_db,omitempty"` // optional postgres connection string for direct profile reads
	InsightsWindow int    `json:"insights_window"`      // number of recent entries fed into trend analysis
	CachePrecache  bool   `json:"cache_precache"`       // whether to warm the response cache on start
}

// DefaultSettings returns the settings written on init.
func DefaultSettings() Settings {
	return Settings{
		Timezone:       "Local",
		InsightsWindow: 7,
		CachePrecache:  true,
	}
}
