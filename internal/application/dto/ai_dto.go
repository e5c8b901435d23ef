package dto

// LeadAdviceRequest pedido de recomendação de fechamento para um lead.
type LeadAdviceRequest struct {
	LeadID string `json:"leadId"`
}

// CandidateScoreRequest avaliação de candidato pelo recrutamento estratégico.
type CandidateScoreRequest struct {
	CandidateData      string `json:"candidateData"`
	Segment            string `json:"segment"`
	CompanyType        string `json:"companyType"`
	IdealProfile       string `json:"idealProfile"`
	QualificationLevel string `json:"qualificationLevel"`
}

// ClimateSentimentRequest análise de clima organizacional.
type ClimateSentimentRequest struct {
	Feedbacks []string `json:"feedbacks"`
}

// DraftContractRequest geração de minuta de contrato (módulo DOCUMENTS).
type DraftContractRequest struct {
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
}

// CampaignImageRequest geração de arte de campanha (módulo MARKETING).
type CampaignImageRequest struct {
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspectRatio"` // ex: "1:1", "16:9"
}

// AITextResponse texto gerado (ou fallback enlatado em caso de falha da IA).
type AITextResponse struct {
	Text string `json:"text"`
}
