package entities

// ServiceType is the kind of work a quote is requested for.

type ServiceType string

const (
	ServiceTypePrint      ServiceType = "print"
	ServiceTypeDesign     ServiceType = "design"
	ServiceTypeReverseEng ServiceType = "reverse_eng"
)

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceTypePrint, ServiceTypeDesign, ServiceTypeReverseEng:
		return true
	}
	return false
}

type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

func (c Complexity) Valid() bool {
	switch c {
	case "", ComplexityLow, ComplexityMedium, ComplexityHigh:
		return true
	}
	return false
}

// QuoteRequest carries what a client knows about the job before a maker is
// chosen. Uploaded files never reach the quote pipeline; only their names may
// appear in Description.
type QuoteRequest struct {
	Type        ServiceType `json:"type"`
	Description string      `json:"description"`
	ModelURL    string      `json:"model_url,omitempty"`
	Material    string      `json:"material,omitempty"`
	Complexity  Complexity  `json:"complexity,omitempty"`
}

// IntelligentQuote is an ephemeral price estimate. It is never persisted:
// the client discards it when the quote form is reset or submitted.
type IntelligentQuote struct {
	Analysis       string   `json:"analysis"`
	Checklist      []string `json:"checklist"`
	EstimatedPrice float64  `json:"estimated_price,omitempty"`
}

type MakerRecommendation struct {
	MakerID       string `json:"maker_id"`
	Justification string `json:"justification"`
}
