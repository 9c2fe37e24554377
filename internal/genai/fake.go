package genai

import "context"

// FakeGenerator implements Generator for tests. Unset hooks panic.
type FakeGenerator struct {
	GenerateTextFn      func(ctx context.Context, prompt string) (string, error)
	GenerateFromImageFn func(ctx context.Context, prompt, mimeType string, data []byte) (string, error)
}

func (f *FakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if f.GenerateTextFn != nil {
		return f.GenerateTextFn(ctx, prompt)
	}
	panic("unexpected GenerateText")
}

func (f *FakeGenerator) GenerateFromImage(ctx context.Context, prompt, mimeType string, data []byte) (string, error) {
	if f.GenerateFromImageFn != nil {
		return f.GenerateFromImageFn(ctx, prompt, mimeType, data)
	}
	panic("unexpected GenerateFromImage")
}
