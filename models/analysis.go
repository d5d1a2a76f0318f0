package models

// LabAnalysisResult is the structured verdict returned by the AI gateway for
// an uploaded lab document. When IsValid is false the document was not a
// recognized medical report and every other field must be ignored.
type LabAnalysisResult struct {
	IsValid         bool     `json:"isValid"`
	DetectedType    string   `json:"detectedType,omitempty"`
	RiskScore       float64  `json:"riskScore"`
	Summary         string   `json:"summary"`
	ImprovementPlan []string `json:"improvementPlan"`
	FertilityStatus string   `json:"fertilityStatus"`
	Suggestions     []string `json:"suggestions"`
}
