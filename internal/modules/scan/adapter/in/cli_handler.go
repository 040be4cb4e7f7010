package in

import (
	"context"

	allowancedto "tokenhub/internal/modules/allowance/dto"
	allowancein "tokenhub/internal/modules/allowance/port/in"
	scandto "tokenhub/internal/modules/scan/dto"
	scanin "tokenhub/internal/modules/scan/port/in"
)

type CLIHandler struct {
	usecase   scanin.Usecase
	allowance allowancein.Usecase
}

func NewCLIHandler(usecase scanin.Usecase, allowance allowancein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase, allowance: allowance}
}

// ScanMessage processes one raw NDEF message. Negative limits mean "derive
// from today's health allowance".
func (h CLIHandler) ScanMessage(ctx context.Context, userID, space string, message []byte, stepsLimit, sleepLimit int) (scandto.ProcessOutput, error) {
	if stepsLimit < 0 || sleepLimit < 0 {
		computed, err := h.allowance.ComputeToday(ctx, allowancedto.ComputeInput{UserID: userID})
		if err != nil {
			return scandto.ProcessOutput{}, err
		}
		if stepsLimit < 0 {
			stepsLimit = computed.Steps
		}
		if sleepLimit < 0 {
			sleepLimit = computed.Sleep
		}
	}
	return h.usecase.Process(ctx, scandto.ProcessInput{
		UserID:  userID,
		Space:   space,
		Message: message,
		Limits:  scandto.Limits{Steps: stepsLimit, Sleep: sleepLimit},
	})
}

func (h CLIHandler) EncodeToken(jsonText string, asText bool) ([]byte, error) {
	return h.usecase.Encode(scandto.EncodeInput{JSON: jsonText, AsText: asText})
}
