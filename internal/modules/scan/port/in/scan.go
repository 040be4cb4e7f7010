package in

import (
	"context"

	"tokenhub/internal/modules/scan/dto"
)

type Usecase interface {
	// Process runs one scan attempt over the tag's records, first match
	// wins. A persistence failure is returned as an error; everything else
	// is expressed in the output.
	Process(ctx context.Context, input dto.ProcessInput) (dto.ProcessOutput, error)
	// Encode renders a token payload as a single-record NDEF message.
	Encode(input dto.EncodeInput) ([]byte, error)
}
