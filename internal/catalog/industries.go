package catalog

// Industry holds vertical-specific lookup data passed through to the
// rendering collaborator. The core does not interpret it beyond selection.
type Industry struct {
	Key         string            `json:"key"`
	Name        string            `json:"name"`
	FullName    string            `json:"full_name"`
	Benchmarks  map[string]string `json:"benchmarks"`
	KeyMetrics  []string          `json:"key_metrics"`
	Terminology map[string]string `json:"terminology"`
	KeyDrivers  []string          `json:"key_drivers"`
}

// DefaultIndustry is used when a record names an unknown vertical.
const DefaultIndustry = "technology"

var industries = map[string]Industry{
	"bfsi": {
		Key:      "bfsi",
		Name:     "BFSI",
		FullName: "Banking, Financial Services & Insurance",
		Benchmarks: map[string]string{
			"avg_growth_rate":   "12-18%",
			"avg_ebitda_margin": "20-35%",
			"avg_deal_multiple": "8-12x EBITDA",
			"market_size":       "$150B+ globally",
		},
		KeyMetrics:  []string{"AUM Growth", "NIM", "Cost-to-Income Ratio", "NPL Ratio", "CAR"},
		Terminology: map[string]string{"clients": "Financial Institutions", "products": "Financial Technology Solutions", "market": "Financial Services Sector"},
		KeyDrivers:  []string{"Digital Banking", "RegTech Solutions", "Open Banking APIs", "AI Risk Mgmt"},
	},
	"healthcare": {
		Key:      "healthcare",
		Name:     "Healthcare",
		FullName: "Healthcare & Life Sciences",
		Benchmarks: map[string]string{
			"avg_growth_rate":   "15-25%",
			"avg_ebitda_margin": "15-25%",
			"avg_deal_multiple": "10-15x EBITDA",
			"market_size":       "$200B+ globally",
		},
		KeyMetrics:  []string{"Patient Volume", "Bed Occupancy", "ARPOB", "Clinical Outcomes"},
		Terminology: map[string]string{"clients": "Healthcare Providers & Payers", "products": "Healthcare Technology Solutions", "market": "Healthcare Sector"},
		KeyDrivers:  []string{"Telemedicine", "AI Diagnostics", "EHR Adoption", "Preventive Care"},
	},
	"retail": {
		Key:      "retail",
		Name:     "Retail",
		FullName: "Retail & Consumer",
		Benchmarks: map[string]string{
			"avg_growth_rate":   "8-15%",
			"avg_ebitda_margin": "8-15%",
			"avg_deal_multiple": "6-10x EBITDA",
			"market_size":       "$100B+ globally",
		},
		KeyMetrics:  []string{"Same-Store Sales", "Inventory Turnover", "Customer LTV", "Basket Size"},
		Terminology: map[string]string{"clients": "Retail Brands & Chains", "products": "Retail Technology Solutions", "market": "Retail Sector"},
		KeyDrivers:  []string{"E-commerce", "Omnichannel", "Supply Chain", "Quick Commerce"},
	},
	"manufacturing": {
		Key:      "manufacturing",
		Name:     "Manufacturing",
		FullName: "Manufacturing & Industrial",
		Benchmarks: map[string]string{
			"avg_growth_rate":   "6-12%",
			"avg_ebitda_margin": "12-20%",
			"avg_deal_multiple": "6-9x EBITDA",
			"market_size":       "$80B+ globally",
		},
		KeyMetrics:  []string{"OEE", "Capacity Utilization", "Defect Rate", "Lead Time"},
		Terminology: map[string]string{"clients": "Industrial Enterprises", "products": "Industrial Technology Solutions", "market": "Manufacturing Sector"},
		KeyDrivers:  []string{"Industry 4.0", "Smart Mfg", "Sustainability", "Automation"},
	},
	"technology": {
		Key:      "technology",
		Name:     "Technology",
		FullName: "Technology & Software",
		Benchmarks: map[string]string{
			"avg_growth_rate":   "20-40%",
			"avg_ebitda_margin": "25-40%",
			"avg_deal_multiple": "10-20x EBITDA",
			"market_size":       "$500B+ globally",
		},
		KeyMetrics:  []string{"ARR", "Net Revenue Retention", "CAC Payback", "Rule of 40"},
		Terminology: map[string]string{"clients": "Enterprise Customers", "products": "Technology Solutions", "market": "Technology Sector"},
		KeyDrivers:  []string{"Cloud Adoption", "AI/ML", "Cybersecurity", "Digital Transform"},
	},
	"media": {
		Key:      "media",
		Name:     "Media",
		FullName: "Media, Entertainment & Digital",
		Benchmarks: map[string]string{
			"avg_growth_rate":   "10-20%",
			"avg_ebitda_margin": "15-30%",
			"avg_deal_multiple": "8-14x EBITDA",
			"market_size":       "$120B+ globally",
		},
		KeyMetrics:  []string{"MAU/DAU", "ARPU", "Content Library Value", "Engagement Time"},
		Terminology: map[string]string{"clients": "Media Companies & Brands", "products": "Content & Media Solutions", "market": "Media Sector"},
		KeyDrivers:  []string{"Streaming", "Personalization", "Ad-Tech", "Creator Economy"},
	},
}

// IndustryFor returns the industry data for a vertical key, falling back
// to the technology vertical when unknown.
func IndustryFor(vertical string) Industry {
	if industry, ok := industries[vertical]; ok {
		return industry
	}
	return industries[DefaultIndustry]
}
