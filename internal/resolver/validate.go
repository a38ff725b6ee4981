package resolver

import (
	"fmt"

	"github.com/IamPrat15/im-creator/internal/catalog"
	"github.com/IamPrat15/im-creator/internal/types"
)

// ValidateCatalog cross-checks every document type against the resolver's
// ordering table and predicate map. It fails fast so a catalog edit that
// adds an optional slide without a predicate is caught at startup rather
// than silently dropped from every plan.
func ValidateCatalog() error {
	ordered := slideSet(slideOrder)
	for _, docType := range catalog.DocumentTypes() {
		cfg := catalog.DocumentConfig(docType)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("document type %q: %w", docType, err)
		}
		for _, id := range cfg.RequiredSlides {
			if !ordered[id] {
				return fmt.Errorf("document type %q: required slide %q has no position in the slide ordering", docType, id)
			}
		}
		for _, id := range cfg.OptionalSlides {
			if !ordered[id] {
				return fmt.Errorf("document type %q: optional slide %q has no position in the slide ordering", docType, id)
			}
			if _, ok := optionalPredicates[id]; !ok {
				return fmt.Errorf("document type %q: optional slide %q has no inclusion predicate", docType, id)
			}
		}
		if containsSlide(cfg.RequiredSlides, types.SlideThankYou) || containsSlide(cfg.OptionalSlides, types.SlideThankYou) {
			return fmt.Errorf("document type %q: thank-you is appended by the resolver and must not appear in the catalog", docType)
		}
	}
	return nil
}

func containsSlide(ids []types.SlideID, want types.SlideID) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}
