package ports

import "context"

// LLMService porta para o serviço generativo externo. Tratado como função
// remota pura, sem estado: a aplicação monta o prompt e a instrução de sistema,
// o adaptador fala o protocolo do provedor.
type LLMService interface {
	// GenerateText gera texto a partir do prompt e da instrução de sistema.
	// temperature controla a aleatoriedade (0 = determinista).
	GenerateText(ctx context.Context, prompt, systemInstruction string, temperature float32) (string, error)
	// GenerateImage gera uma imagem (bytes PNG) a partir do prompt.
	GenerateImage(ctx context.Context, prompt, aspectRatio string) ([]byte, error)
}

// ContractPDFRenderer porta para a renderização da minuta de contrato em PDF.
type ContractPDFRenderer interface {
	RenderContract(ctx context.Context, title, body string) ([]byte, error)
}
