// Package catalog holds the static configuration consumed by the slide-plan
// resolver and the rendering collaborator: document-type definitions,
// industry vertical data, and buyer-type content.
package catalog

import (
	"github.com/go-playground/validator/v10"

	"github.com/IamPrat15/im-creator/internal/types"
)

// DefaultDocumentType is the fallback used when a request names an unknown
// document type. Lookups never fail; they degrade to this.
const DefaultDocumentType = "management-presentation"

// DocumentTypeConfig describes one document type: its slide sets, slide
// count bounds (informational, not enforced), and content policy flags.
type DocumentTypeConfig struct {
	Key                    string          `json:"key" validate:"required"`
	Name                   string          `json:"name" validate:"required"`
	SlideRange             string          `json:"slide_range"`
	MinSlides              int             `json:"min_slides" validate:"gte=0"`
	MaxSlides              int             `json:"max_slides" validate:"gtefield=MinSlides"`
	IncludeFinancialDetail bool            `json:"include_financial_detail"`
	IncludeSensitiveData   bool            `json:"include_sensitive_data"`
	IncludeClientNames     bool            `json:"include_client_names"`
	MaxCaseStudies         int             `json:"max_case_studies" validate:"gte=0"`
	RequiredSlides         []types.SlideID `json:"required_slides" validate:"required,min=1"`
	OptionalSlides         []types.SlideID `json:"optional_slides"`
}

// documentConfigs is the closed set of document types. Loaded once,
// immutable afterwards.
var documentConfigs = map[string]DocumentTypeConfig{
	"management-presentation": {
		Key:                    "management-presentation",
		Name:                   "Management Presentation",
		SlideRange:             "12-18 slides",
		MinSlides:              12,
		MaxSlides:              18,
		IncludeFinancialDetail: true,
		IncludeSensitiveData:   true,
		IncludeClientNames:     true,
		MaxCaseStudies:         2,
		RequiredSlides: []types.SlideID{
			types.SlideTitle, types.SlideDisclaimer, types.SlideExecutiveSummary,
			types.SlideInvestmentHighlights, types.SlideServices, types.SlideClients,
			types.SlideFinancials,
		},
		OptionalSlides: []types.SlideID{
			types.SlideLeadership, types.SlideCaseStudies, types.SlideGrowth,
			types.SlideSynergies, types.SlideMarketPosition,
		},
	},
	"cim": {
		Key:                    "cim",
		Name:                   "Confidential Information Memorandum",
		SlideRange:             "20-35 slides",
		MinSlides:              20,
		MaxSlides:              35,
		IncludeFinancialDetail: true,
		IncludeSensitiveData:   true,
		IncludeClientNames:     true,
		MaxCaseStudies:         2,
		RequiredSlides: []types.SlideID{
			types.SlideTitle, types.SlideDisclaimer, types.SlideTOC,
			types.SlideExecutiveSummary, types.SlideInvestmentHighlights,
			types.SlideCompanyOverview, types.SlideLeadership, types.SlideIndustry,
			types.SlideServices, types.SlideClients, types.SlideFinancials,
			types.SlideGrowth, types.SlideSynergies, types.SlideRisks,
		},
		OptionalSlides: []types.SlideID{
			types.SlideCaseStudies, types.SlideMarketPosition,
			types.SlideTeamBios, types.SlideFinancialDetail,
		},
	},
	"teaser": {
		Key:                  "teaser",
		Name:                 "Teaser Document",
		SlideRange:           "5-8 slides",
		MinSlides:            5,
		MaxSlides:            8,
		IncludeClientNames:   false,
		IncludeSensitiveData: false,
		MaxCaseStudies:       0,
		RequiredSlides: []types.SlideID{
			types.SlideTitle, types.SlideDisclaimer, types.SlideExecutiveSummary,
			types.SlideServices,
		},
		OptionalSlides: []types.SlideID{
			types.SlideInvestmentHighlights, types.SlideMarketPosition,
		},
	},
}

// DocumentConfig returns the config for a document type, falling back to
// the default type when the key is unknown. Never fails.
func DocumentConfig(documentType string) DocumentTypeConfig {
	if cfg, ok := documentConfigs[documentType]; ok {
		return cfg
	}
	return documentConfigs[DefaultDocumentType]
}

// KnownDocumentType reports whether the key names a configured type.
func KnownDocumentType(documentType string) bool {
	_, ok := documentConfigs[documentType]
	return ok
}

// DocumentTypes returns the configured document type keys.
func DocumentTypes() []string {
	keys := make([]string, 0, len(documentConfigs))
	for key := range documentConfigs {
		keys = append(keys, key)
	}
	return keys
}

var configValidator = validator.New()

// Validate checks one config's structural invariants via its validate tags.
func (c DocumentTypeConfig) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return &ConfigError{Message: "invalid document config " + c.Key, Cause: err}
	}
	return nil
}

// Validate checks structural invariants of the catalog: every config has
// required slides and sane bounds, and the default type exists. Meant to be
// called once at startup so a bad catalog edit fails fast, not per request.
func Validate() error {
	if _, ok := documentConfigs[DefaultDocumentType]; !ok {
		return &ConfigError{Message: "default document type missing from catalog"}
	}
	for _, cfg := range documentConfigs {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	return nil
}
