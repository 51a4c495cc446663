package store

import (
	"log"
	"sync"

	"github.com/Amar3x3/seoAgent/models"
)

// ContentStore holds the editable landing page content in memory.
// Last write wins; there is no versioning. The defaults match the page
// the demo assistant is asked to improve.
type ContentStore struct {
	mu      sync.RWMutex
	content models.SiteContent
}

func NewContentStore() *ContentStore {
	return &ContentStore{
		content: models.SiteContent{
			Title:         "Default Title | Apollo Hospitals",
			Description:   "This is the default description.",
			PageH1:        "Best Orthopedics Hospital in Chennai",
			PageParagraph: "The Department of Orthopaedics at Apollo Hospitals, Chennai is renowned for delivering advanced Orthopaedics care.",
		},
	}
}

// Get returns the current content snapshot.
func (s *ContentStore) Get() models.SiteContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content
}

// Update applies a partial update; fields absent from the request keep
// their stored values.
func (s *ContentStore) Update(req models.UpdateContentRequest) models.SiteContent {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Title != nil {
		s.content.Title = *req.Title
	}
	if req.Description != nil {
		s.content.Description = *req.Description
	}
	if req.PageH1 != nil {
		s.content.PageH1 = *req.PageH1
	}
	if req.PageParagraph != nil {
		s.content.PageParagraph = *req.PageParagraph
	}

	log.Printf("Site content updated: title=%q h1=%q", s.content.Title, s.content.PageH1)
	return s.content
}
