package transcribe

import "context"

// FakeTranscriber implements Transcriber for tests. An unset hook panics.
type FakeTranscriber struct {
	TranscribeFn func(ctx context.Context, audioURL string) (*Result, error)
}

func (f *FakeTranscriber) Transcribe(ctx context.Context, audioURL string) (*Result, error) {
	if f.TranscribeFn != nil {
		return f.TranscribeFn(ctx, audioURL)
	}
	panic("unexpected Transcribe")
}
