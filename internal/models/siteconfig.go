package models

// SocialMedia agrupa os links de redes sociais exibidos no rodapé.
type SocialMedia struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
}

// Contact agrupa os dados de contato públicos do site.
type Contact struct {
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	BusinessHours string `json:"businessHours,omitempty"`
}

// SiteConfig é o documento singleton de configuração do site,
// persistido na linha fixa id='config' da tabela site_config.
type SiteConfig struct {
	SiteName         string      `json:"siteName"`
	NotificationText string      `json:"notificationText"`
	LogoURL          string      `json:"logoUrl,omitempty"`
	FaviconURL       string      `json:"faviconUrl,omitempty"`
	SocialMedia      SocialMedia `json:"socialMedia"`
	Contact          Contact     `json:"contact"`
}

// DefaultSiteConfig é o fallback quando a leitura da configuração falha
// ou a linha ainda não existe.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		SiteName:         "Achadinhos Xpress",
		NotificationText: "🔥 Ofertas novas todos os dias!",
	}
}
