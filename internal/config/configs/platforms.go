package configs

// Platforms holds base URLs for the external platform API clients. The
// defaults point at the real endpoints; tests and local runs override them
// with a stub server.
type Platforms struct {
	MetaBaseURL     string `env:"META_BASE_URL" envDefault:"https://graph.facebook.com/v19.0"`
	TikTokBaseURL   string `env:"TIKTOK_BASE_URL" envDefault:"https://business-api.tiktok.com/open_api/v1.3"`
	LinkedInBaseURL string `env:"LINKEDIN_BASE_URL" envDefault:"https://api.linkedin.com/rest"`
}
