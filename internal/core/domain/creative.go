package domain

// Creative is the content shown by an ad.
type Creative struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	LinkURL     string `json:"link_url,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// SampleImageURL is stored on creatives until image upload exists.
const SampleImageURL = "https://example.com/sample-image.jpg"
