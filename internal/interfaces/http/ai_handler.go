package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wsbrasil/nexus-api/internal/application/dto"
	"github.com/wsbrasil/nexus-api/internal/application/usecase"
)

// AIHandler operações generativas do console.
type AIHandler struct {
	uc *usecase.AIUseCase
}

func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// LeadAdvice recomendação de fechamento para um lead.
func (h *AIHandler) LeadAdvice(c *fiber.Ctx) error {
	out, err := h.uc.LeadAdvice(c.Context(), GetOrgID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CandidateScore avaliação de candidato por recrutamento estratégico.
func (h *AIHandler) CandidateScore(c *fiber.Ctx) error {
	var in dto.CandidateScoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CandidateScore(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ClimateSentiment análise de clima organizacional por feedbacks anônimos.
func (h *AIHandler) ClimateSentiment(c *fiber.Ctx) error {
	var in dto.ClimateSentimentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.ClimateSentiment(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PDI plano de desenvolvimento individual a partir da posição 9-box.
func (h *AIHandler) PDI(c *fiber.Ctx) error {
	out, err := h.uc.PDI(c.Context(), GetOrgID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockClearanceCampaign campanha de queima de estoque a partir do catálogo.
func (h *AIHandler) StockClearanceCampaign(c *fiber.Ctx) error {
	out, err := h.uc.StockClearanceCampaign(c.Context(), GetOrgID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DraftContract gera a minuta e devolve o PDF renderizado.
func (h *AIHandler) DraftContract(c *fiber.Ctx) error {
	var in dto.DraftContractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	pdfBytes, err := h.uc.DraftContract(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="minuta-contrato.pdf"`)
	return c.Send(pdfBytes)
}

// CampaignImage gera a arte de campanha (PNG).
func (h *AIHandler) CampaignImage(c *fiber.Ctx) error {
	var in dto.CampaignImageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	img, err := h.uc.CampaignImage(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(img)
}
