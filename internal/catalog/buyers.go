package catalog

// BuyerContent carries positioning content for one target buyer type.
// Opaque to the core; consumed by the rendering collaborator.
type BuyerContent struct {
	Key               string   `json:"key"`
	Name              string   `json:"name"`
	Focus             []string `json:"focus"`
	KeyMessages       []string `json:"key_messages"`
	FinancialEmphasis []string `json:"financial_emphasis"`
}

var buyerContent = map[string]BuyerContent{
	"strategic": {
		Key:               "strategic",
		Name:              "Strategic Buyer",
		Focus:             []string{"Market expansion", "Technology acquisition", "Talent access"},
		KeyMessages:       []string{"Complementary capabilities", "Established market presence", "Skilled workforce ready for integration"},
		FinancialEmphasis: []string{"Revenue synergies", "Cost synergies", "Market share gains"},
	},
	"financial": {
		Key:               "financial",
		Name:              "Financial Investor",
		Focus:             []string{"Growth potential", "Margin expansion", "Exit multiple"},
		KeyMessages:       []string{"Strong EBITDA margins", "Clear path to value creation", "Experienced management team"},
		FinancialEmphasis: []string{"EBITDA growth", "Cash conversion", "IRR potential"},
	},
	"international": {
		Key:               "international",
		Name:              "International Acquirer",
		Focus:             []string{"Market entry", "Local expertise", "Regulatory navigation"},
		KeyMessages:       []string{"Local market presence", "Regulatory understanding", "Cost-effective talent base"},
		FinancialEmphasis: []string{"Currency considerations", "Transfer pricing", "Tax efficiency"},
	},
}

// BuyerFor returns content for a buyer type, defaulting to strategic.
func BuyerFor(buyerType string) BuyerContent {
	if content, ok := buyerContent[buyerType]; ok {
		return content
	}
	return buyerContent["strategic"]
}
