package models

// SiteContent holds the four editable text fields of the orthopedics
// landing page: the SEO title and meta description plus the visible h1
// and intro paragraph.
type SiteContent struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	PageH1        string `json:"page_h1"`
	PageParagraph string `json:"page_paragraph"`
}

// UpdateContentRequest is a partial update: any nil field leaves the
// stored value unchanged.
type UpdateContentRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	PageH1        *string `json:"page_h1"`
	PageParagraph *string `json:"page_paragraph"`
}
