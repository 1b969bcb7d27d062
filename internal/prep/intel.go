package prep

import (
	"regexp"
	"strings"
)

// enterpriseNames is the fixed list of known large employers. Matching is
// case-insensitive substring over the supplied company name.
var enterpriseNames = []string{
	"amazon", "microsoft", "google", "meta", "apple", "infosys", "tcs", "wipro", "hcl",
	"accenture", "capgemini", "cognizant", "ibm", "oracle", "sap", "salesforce", "adobe",
	"netflix", "uber", "flipkart", "paytm", "zoho", "freshworks", "thoughtworks",
}

// Industry inference rules, checked in order; first match wins.
var (
	financePattern    = regexp.MustCompile(`\b(finance|banking|investment|fintech)\b`)
	healthcarePattern = regexp.MustCompile(`\b(healthcare|health|medical|pharma)\b`)
	retailPattern     = regexp.MustCompile(`\b(retail|ecommerce|e-commerce)\b`)
)

const (
	industryFinance    = "Financial Services"
	industryHealthcare = "Healthcare"
	industryRetail     = "Retail / E-commerce"
	industryDefault    = "Technology Services"
)

// BuildCompanyIntel derives the company profile heuristic. It returns nil
// when no company name was supplied; it never fails.
func BuildCompanyIntel(company, jdText string) *CompanyIntel {
	name := strings.TrimSpace(company)
	if name == "" {
		return nil
	}

	lowerName := strings.ToLower(name)
	isEnterprise := false
	for _, known := range enterpriseNames {
		if strings.Contains(lowerName, known) {
			isEnterprise = true
			break
		}
	}

	sizeCategory := "Startup (<200)"
	hiringFocus := "Practical problem-solving and stack depth; ability to ship quickly."
	if isEnterprise {
		sizeCategory = "Enterprise (2000+)"
		hiringFocus = "Structured DSA and core CS fundamentals; emphasis on scalability and process."
	}

	return &CompanyIntel{
		CompanyName:        name,
		Industry:           inferIndustry(jdText),
		SizeCategory:       sizeCategory,
		TypicalHiringFocus: hiringFocus,
		IsEnterprise:       isEnterprise,
	}
}

func inferIndustry(jdText string) string {
	lower := strings.ToLower(strings.TrimSpace(jdText))
	if lower == "" {
		return industryDefault
	}
	switch {
	case financePattern.MatchString(lower):
		return industryFinance
	case healthcarePattern.MatchString(lower):
		return industryHealthcare
	case retailPattern.MatchString(lower):
		return industryRetail
	default:
		return industryDefault
	}
}
