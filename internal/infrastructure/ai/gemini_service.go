// Package ai adaptador para o serviço generativo do Google (Gemini / Imagen).
// O provedor é tratado como função remota: prompt entra, texto ou imagem sai.
package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/wsbrasil/nexus-api/internal/application/ports"
	"github.com/wsbrasil/nexus-api/internal/infrastructure/resilience"
	"github.com/wsbrasil/nexus-api/pkg/config"
	"github.com/wsbrasil/nexus-api/pkg/logger"
)

// Verificação em tempo de compilação de que GeminiService implementa a porta.
var _ ports.LLMService = (*GeminiService)(nil)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiService fala o protocolo REST do Gemini (texto) e do Imagen (imagem),
// com retry + circuit breaker para não martelar um provedor degradado.
type GeminiService struct {
	client     *resty.Client
	apiKey     string
	textModel  string
	imageModel string
	breaker    *gobreaker.CircuitBreaker
	retryCfg   resilience.Config
	log        *logger.Logger
}

// NewGeminiService constrói o adaptador a partir da configuração de IA.
func NewGeminiService(cfg config.AIConfig, log *logger.Logger) *GeminiService {
	client := resty.New().
		SetBaseURL(geminiBaseURL).
		SetTimeout(20 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &GeminiService{
		client:     client,
		apiKey:     cfg.GeminiAPIKey,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		breaker:    resilience.NewCircuitBreaker("gemini"),
		retryCfg:   resilience.Config{MaxRetries: 2, InitialBackoff: 300 * time.Millisecond},
		log:        log,
	}
}

// ── Estruturas do protocolo ───────────────────────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type imagenRequest struct {
	Instances  []imagenInstance `json:"instances"`
	Parameters imagenParams     `json:"parameters"`
}

type imagenInstance struct {
	Prompt string `json:"prompt"`
}

type imagenParams struct {
	SampleCount int    `json:"sampleCount"`
	AspectRatio string `json:"aspectRatio"`
}

type imagenResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
	} `json:"predictions"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementação da porta ────────────────────────────────────────────────────

// GenerateText chama o endpoint generateContent do modelo de texto configurado.
func (s *GeminiService) GenerateText(ctx context.Context, prompt, systemInstruction string, temperature float32) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("ai: GEMINI_API_KEY não configurada")
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: genConfig{Temperature: temperature, MaxOutputTokens: 1024},
	}
	if systemInstruction != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: systemInstruction}}}
	}

	var out geminiResponse
	err := s.call(ctx, func() error {
		resp, err := s.client.R().
			SetContext(ctx).
			SetQueryParam("key", s.apiKey).
			SetBody(payload).
			SetResult(&out).
			SetError(&out).
			Post(fmt.Sprintf("/models/%s:generateContent", s.textModel))
		if err != nil {
			return fmt.Errorf("ai: chamada HTTP falhou: %w", err)
		}
		if resp.IsError() {
			if out.Error != nil {
				return fmt.Errorf("ai: gemini erro %d: %s", out.Error.Code, out.Error.Message)
			}
			return fmt.Errorf("ai: gemini HTTP %d", resp.StatusCode())
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("ai: gemini devolveu resposta vazia")
	}
	return strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text), nil
}

// GenerateImage chama o endpoint predict do Imagen e devolve o PNG decodificado.
func (s *GeminiService) GenerateImage(ctx context.Context, prompt, aspectRatio string) ([]byte, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("ai: GEMINI_API_KEY não configurada")
	}

	payload := imagenRequest{
		Instances:  []imagenInstance{{Prompt: prompt}},
		Parameters: imagenParams{SampleCount: 1, AspectRatio: aspectRatio},
	}

	var out imagenResponse
	err := s.call(ctx, func() error {
		resp, err := s.client.R().
			SetContext(ctx).
			SetQueryParam("key", s.apiKey).
			SetBody(payload).
			SetResult(&out).
			SetError(&out).
			Post(fmt.Sprintf("/models/%s:predict", s.imageModel))
		if err != nil {
			return fmt.Errorf("ai: chamada HTTP falhou: %w", err)
		}
		if resp.IsError() {
			if out.Error != nil {
				return fmt.Errorf("ai: imagen erro %d: %s", out.Error.Code, out.Error.Message)
			}
			return fmt.Errorf("ai: imagen HTTP %d", resp.StatusCode())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(out.Predictions) == 0 || out.Predictions[0].BytesBase64Encoded == "" {
		return nil, fmt.Errorf("ai: imagen devolveu resposta vazia")
	}
	img, err := base64.StdEncoding.DecodeString(out.Predictions[0].BytesBase64Encoded)
	if err != nil {
		return nil, fmt.Errorf("ai: decodificar imagem: %w", err)
	}
	return img, nil
}

// call envolve a chamada remota com retry + circuit breaker.
func (s *GeminiService) call(ctx context.Context, fn func() error) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return nil, resilience.RetryWithBackoff(ctx, s.retryCfg, fn)
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		s.log.Warn().Str("breaker", s.breaker.Name()).Msg("circuito aberto para o provedor generativo")
	}
	return err
}
