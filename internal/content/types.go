package content

// Button is a hero call-to-action.
type Button struct {
	Text string `json:"text"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

// NavItem is one entry of the top navigation.
type NavItem struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// SocialLink is an icon link in a footer column.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

// FooterLink is a text link in a footer column.
type FooterLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// FooterColumn groups footer content.
type FooterColumn struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	SocialLinks []SocialLink `json:"socialLinks,omitempty"`
	Links       []FooterLink `json:"links,omitempty"`
}

// SiteConfig corresponds to site-config.json.
type SiteConfig struct {
	Site struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"site"`
	Hero struct {
		Title           string `json:"title"`
		Subtitle        string `json:"subtitle"`
		PrimaryButton   Button `json:"primaryButton"`
		SecondaryButton Button `json:"secondaryButton"`
	} `json:"hero"`
	Navigation []NavItem `json:"navigation"`
	Footer     struct {
		Columns   []FooterColumn `json:"columns"`
		Copyright string         `json:"copyright"`
	} `json:"footer"`
}

// Links corresponds to links.json: url overrides keyed by section.
type Links struct {
	Navigation map[string]string            `json:"navigation"`
	External   map[string]string            `json:"external"`
	Social     map[string]string            `json:"social"`
	Downloads  map[string]map[string]string `json:"downloads"`
}

// Feature is one feature card.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Highlight   bool   `json:"highlight"`
}

// Features corresponds to features.json.
type Features struct {
	Features []Feature `json:"features"`
}

// ImageOptions tweaks how a tutorial card image is framed.
type ImageOptions struct {
	AspectRatio    string `json:"aspectRatio,omitempty"`
	ContainerClass string `json:"containerClass,omitempty"`
	Crop           string `json:"crop,omitempty"`
	Fit            string `json:"fit,omitempty"`
}

// Section is one chapter of a tutorial.
type Section struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	Image        string `json:"image,omitempty"`
	YoutubeVideo string `json:"youtubeVideo,omitempty"`
}

// Tutorial is one tutorial entry of tutorials.json.
type Tutorial struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Category     string        `json:"category"`
	Tags         []string      `json:"tags"`
	ReadTime     string        `json:"readTime"`
	Date         string        `json:"date"`
	Image        string        `json:"image,omitempty"`
	Icon         string        `json:"icon,omitempty"`
	ImageOptions *ImageOptions `json:"imageOptions,omitempty"`
	Intro        string        `json:"intro,omitempty"`
	Sections     []Section     `json:"sections,omitempty"`
	Conclusion   string        `json:"conclusion,omitempty"`
}

// Tutorials corresponds to tutorials.json.
type Tutorials struct {
	Categories []string   `json:"categories"`
	Tutorials  []Tutorial `json:"tutorials"`
}

// Platform is a downloadable build target.
type Platform struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Icon         string            `json:"icon"`
	DownloadURLs map[string]string `json:"downloadUrls,omitempty"`
}

// Downloads corresponds to downloads.json.
type Downloads struct {
	CurrentVersion string     `json:"currentVersion"`
	ReleaseDate    string     `json:"releaseDate"`
	Platforms      []Platform `json:"platforms"`
}
