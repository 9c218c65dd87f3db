package ports

import "context"

// VisionDescriber is the one capability the recognition pipeline needs
// from a vision provider. Concrete clients (OpenAI-compatible, Gemini)
// and test doubles all sit behind it.
type VisionDescriber interface {
	Describe(
		ctx context.Context,
		imageDataURI string,
		systemPrompt string,
		userPrompt string,
	) (string, error)
}
