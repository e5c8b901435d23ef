package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wsbrasil/nexus-api/internal/application/dto"
	"github.com/wsbrasil/nexus-api/internal/application/ports"
	"github.com/wsbrasil/nexus-api/internal/domain"
	"github.com/wsbrasil/nexus-api/internal/domain/repository"
	"github.com/wsbrasil/nexus-api/internal/domain/talent"
	"github.com/wsbrasil/nexus-api/pkg/logger"
)

// aiTimeout prazo por chamada generativa; o console nunca espera mais que isso.
const aiTimeout = 10 * time.Second

// Fallbacks enlatados: operações de texto degradam para copy padrão em vez de
// devolver erro ao console.
const (
	fallbackLeadAdvice     = "Fechamento imediato recomendado."
	fallbackCandidate      = "Análise indisponível."
	fallbackClimate        = "Sentimento neutro."
	fallbackPDI            = "Plano de desenvolvimento em elaboração. Consulte o RH."
	fallbackStockClearance = "Campanha de queima de estoque em preparação."
)

// Parâmetros padrão do recrutamento estratégico quando o tenant não configura
// os próprios.
var defaultRecruitingConfig = dto.CandidateScoreRequest{
	Segment:            "Inteligência Comercial",
	CompanyType:        "Alta Performance / Inovação",
	IdealProfile:       "Perfil Executor, focado em metas e tecnologia",
	QualificationLevel: "Sênior",
}

// AIUseCase concentra as operações generativas do console: recomendações de
// CRM, recrutamento, clima, PDI, campanhas e minutas de contrato.
type AIUseCase struct {
	llm          ports.LLMService
	pdf          ports.ContractPDFRenderer
	leadRepo     repository.LeadRepository
	employeeRepo repository.EmployeeRepository
	productRepo  repository.ProductRepository
	log          *logger.Logger
}

func NewAIUseCase(
	llm ports.LLMService,
	pdf ports.ContractPDFRenderer,
	leadRepo repository.LeadRepository,
	employeeRepo repository.EmployeeRepository,
	productRepo repository.ProductRepository,
	log *logger.Logger,
) *AIUseCase {
	return &AIUseCase{
		llm:          llm,
		pdf:          pdf,
		leadRepo:     leadRepo,
		employeeRepo: employeeRepo,
		productRepo:  productRepo,
		log:          log,
	}
}

// LeadAdvice recomendação de 1 frase para o vendedor fechar o lead agora.
func (uc *AIUseCase) LeadAdvice(ctx context.Context, orgID, leadID string) (*dto.AITextResponse, error) {
	lead, err := uc.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil || lead.OrganizationID != orgID {
		return nil, domain.ErrNotFound
	}

	interactions := lead.Observations
	for _, t := range lead.Tasks {
		interactions += " | " + t.Text
	}
	prompt := fmt.Sprintf(
		"O lead possui score %d e as seguintes interações: %s. "+
			"Me dê uma recomendação de 1 frase para o vendedor fechar o negócio agora.",
		lead.Score, interactions,
	)
	return uc.generate(ctx, prompt,
		"Você é o Diretor Comercial da WS Brasil I.C. Seja direto, agressivo e estratégico.",
		0.5, fallbackLeadAdvice), nil
}

// CandidateScore avalia um candidato contra o contexto de vaga configurado,
// devolvendo score 0-100 e justificativa focada em ROI.
func (uc *AIUseCase) CandidateScore(ctx context.Context, in dto.CandidateScoreRequest) (*dto.AITextResponse, error) {
	if strings.TrimSpace(in.CandidateData) == "" {
		return nil, domain.ErrInvalidInput
	}
	cfg := in
	if cfg.Segment == "" {
		cfg.Segment = defaultRecruitingConfig.Segment
	}
	if cfg.CompanyType == "" {
		cfg.CompanyType = defaultRecruitingConfig.CompanyType
	}
	if cfg.IdealProfile == "" {
		cfg.IdealProfile = defaultRecruitingConfig.IdealProfile
	}
	if cfg.QualificationLevel == "" {
		cfg.QualificationLevel = defaultRecruitingConfig.QualificationLevel
	}
	prompt := fmt.Sprintf(
		"Contexto da Vaga:\nEmpresa: %s\nSegmento: %s\nPerfil Desejado: %s\nNível: %s\n\n"+
			"Dados do Candidato: %s\n\n"+
			"Retorne um score de 0 a 100 e uma justificativa focada no ROI que este perfil trará para este contexto específico.",
		cfg.CompanyType, cfg.Segment, cfg.IdealProfile, cfg.QualificationLevel, in.CandidateData,
	)
	return uc.generate(ctx, prompt,
		"Você é um Especialista em Recrutamento Estratégico. Sua análise deve ser baseada rigorosamente nos parâmetros de empresa e perfil fornecidos.",
		0.5, fallbackCandidate), nil
}

// ClimateSentiment avalia o sentimento predominante dos feedbacks anônimos.
func (uc *AIUseCase) ClimateSentiment(ctx context.Context, in dto.ClimateSentimentRequest) (*dto.AITextResponse, error) {
	if len(in.Feedbacks) == 0 {
		return nil, domain.ErrInvalidInput
	}
	prompt := fmt.Sprintf("Avalie o sentimento predominante nestes feedbacks: %s.",
		strings.Join(in.Feedbacks, " | "))
	return uc.generate(ctx, prompt,
		"Você é o Diretor de Cultura da WS Brasil I.C. Analise o clima de forma pragmática.",
		0.7, fallbackClimate), nil
}

// PDI gera um Plano de Desenvolvimento Individual a partir da posição 9-box
// atual do colaborador.
func (uc *AIUseCase) PDI(ctx context.Context, orgID, employeeID string) (*dto.AITextResponse, error) {
	emp, err := uc.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil || emp.OrganizationID != orgID {
		return nil, domain.ErrNotFound
	}
	cell := talent.Classify(emp.PerformanceScore, emp.PotentialScore)
	prompt := fmt.Sprintf(
		"Crie um Plano de Desenvolvimento Individual (PDI) técnico e estratégico para o colaborador %s, "+
			"cargo %s, classificado na matriz 9-box como: %s.",
		emp.Name, emp.Role, cell,
	)
	return uc.generate(ctx, prompt,
		"Você é o Arquiteto de Talentos da WS Brasil I.C. Gere valor e crescimento acelerado.",
		0.7, fallbackPDI), nil
}

// StockClearanceCampaign monta uma campanha de queima de estoque com os itens
// parados do catálogo, focada em liquidez imediata.
func (uc *AIUseCase) StockClearanceCampaign(ctx context.Context, orgID string) (*dto.AITextResponse, error) {
	items, err := uc.productRepo.ListByOrganization(ctx, orgID, 50, 0)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	for _, it := range items {
		if it.Stock.Unbounded {
			continue
		}
		fmt.Fprintf(&sb, "%s (%d un, R$ %s); ", it.Name, it.Stock.Qty, it.Price.StringFixed(2))
	}
	if sb.Len() == 0 {
		return nil, domain.ErrNotFound
	}
	prompt := fmt.Sprintf(
		"Crie uma campanha de marketing para queima de estoque baseada nestes dados: %s. Foque em liquidez imediata.",
		sb.String(),
	)
	return uc.generate(ctx, prompt,
		"Você é o Growth Hacker da WS Brasil I.C. Gere caixa rápido com automação inteligente.",
		0.8, fallbackStockClearance), nil
}

// DraftContract redige a minuta e a renderiza em PDF. Ao contrário das
// operações de texto, aqui falha da IA é erro: o PDF é o entregável.
func (uc *AIUseCase) DraftContract(ctx context.Context, in dto.DraftContractRequest) ([]byte, error) {
	if strings.TrimSpace(in.Prompt) == "" {
		return nil, domain.ErrInvalidInput
	}
	llmCtx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()
	body, err := uc.llm.GenerateText(llmCtx,
		fmt.Sprintf("Redija um contrato formal baseado nestas informações: %s.", in.Prompt),
		"Você é o Diretor Jurídico da WS Brasil I.C. Use linguagem técnica e clara.",
		0.7)
	if err != nil {
		return nil, err
	}
	title := in.Title
	if title == "" {
		title = "Minuta de Contrato"
	}
	return uc.pdf.RenderContract(ctx, title, body)
}

// CampaignImage gera a arte de campanha (bytes PNG) para o módulo MARKETING.
func (uc *AIUseCase) CampaignImage(ctx context.Context, in dto.CampaignImageRequest) ([]byte, error) {
	if strings.TrimSpace(in.Prompt) == "" {
		return nil, domain.ErrInvalidInput
	}
	ratio := in.AspectRatio
	if ratio == "" {
		ratio = "1:1"
	}
	llmCtx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()
	return uc.llm.GenerateImage(llmCtx, in.Prompt, ratio)
}

// generate chamada de texto com fallback: indisponibilidade do provedor nunca
// vira erro para o console.
func (uc *AIUseCase) generate(ctx context.Context, prompt, systemInstruction string, temperature float32, fallback string) *dto.AITextResponse {
	llmCtx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()
	text, err := uc.llm.GenerateText(llmCtx, prompt, systemInstruction, temperature)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			uc.log.Warn().Err(err).Msg("geração de texto degradada para fallback")
		}
		return &dto.AITextResponse{Text: fallback}
	}
	return &dto.AITextResponse{Text: text}
}
