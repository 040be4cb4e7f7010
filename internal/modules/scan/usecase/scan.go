package usecase

import (
	"context"
	"fmt"

	ledgerdto "tokenhub/internal/modules/ledger/dto"
	ledgerin "tokenhub/internal/modules/ledger/port/in"
	mirrordto "tokenhub/internal/modules/mirror/dto"
	mirrorin "tokenhub/internal/modules/mirror/port/in"
	"tokenhub/internal/modules/scan/domain"
	"tokenhub/internal/modules/scan/dto"
	"tokenhub/internal/modules/scan/service"
)

const (
	typeAutomated = "automated"
	typeMood      = "mood"
)

type Interactor struct {
	svc    *service.ScanService
	ledger ledgerin.Usecase
	mirror mirrorin.Usecase
}

func NewInteractor(svc *service.ScanService, ledger ledgerin.Usecase, mirror mirrorin.Usecase) *Interactor {
	return &Interactor{svc: svc, ledger: ledger, mirror: mirror}
}

// Process walks the tag's records in order and honors the first one that
// yields a decision. A blocking condition (deprecated category, empty or
// exceeded limit) terminates the whole attempt so a later record on the same
// tag can never bypass it.
func (i *Interactor) Process(ctx context.Context, input dto.ProcessInput) (dto.ProcessOutput, error) {
	if len(input.Records) == 0 && len(input.Message) > 0 {
		parsed, err := domain.ParseMessage(input.Message)
		if err != nil {
			return dto.ProcessOutput{}, err
		}
		for _, record := range parsed {
			input.Records = append(input.Records, dto.TagRecord{TNF: record.TNF, Type: record.Type, Payload: record.Payload})
		}
	}
	for _, tagRecord := range input.Records {
		raw, ok := domain.DecodePayload(domain.Record{TNF: tagRecord.TNF, Type: tagRecord.Type, Payload: tagRecord.Payload})
		if !ok {
			continue
		}
		token, ok := domain.ParseToken(raw)
		if !ok {
			continue
		}

		if automated, isAutomated := token.(domain.AutomatedToken); isAutomated {
			if automated.Category == domain.CategoryHeart {
				return dto.ProcessOutput{Found: true, Message: i.svc.DeprecatedCategoryMessage()}, nil
			}
			limit := i.svc.LimitFor(automated.Category, input.Limits.Steps, input.Limits.Sleep)
			if limit <= 0 {
				return dto.ProcessOutput{Found: true, Message: i.svc.UnavailableMessage(automated.Category)}, nil
			}
			used, err := i.ledger.CountAutomatedToday(ctx, ledgerdto.CountInput{UserID: input.UserID, Category: string(automated.Category)})
			if err != nil {
				return dto.ProcessOutput{}, fmt.Errorf("count today's scans: %w", err)
			}
			if used+automated.Amount > limit {
				return dto.ProcessOutput{Found: true, Message: i.svc.ExhaustedMessage(automated.Category)}, nil
			}
		}

		stored, err := i.ledger.Append(ctx, appendInputFor(input.UserID, token))
		if err != nil {
			return dto.ProcessOutput{}, err
		}

		if input.Space != "" && i.mirror != nil {
			i.mirror.LogScan(ctx, mirrordto.LogScanInput{
				Space: input.Space,
				Record: mirrordto.Document{
					ID:        stored.ID,
					UserID:    stored.UserID,
					Type:      stored.Type,
					Category:  stored.Category,
					Mood:      stored.Mood,
					Amount:    stored.Amount,
					Timestamp: stored.Timestamp,
				},
			})
		}

		return dto.ProcessOutput{
			Found:    true,
			Accepted: true,
			Message:  i.svc.SuccessMessage(token),
			RecordID: stored.ID,
		}, nil
	}
	return dto.ProcessOutput{}, nil
}

// Encode renders a token payload as a single-record NDEF message, either as
// a well-known text record or an application/json MIME record.
func (i *Interactor) Encode(input dto.EncodeInput) ([]byte, error) {
	record := domain.NewJSONRecord(input.JSON)
	if input.AsText {
		record = domain.NewTextRecord("en", input.JSON)
	}
	return domain.EncodeMessage([]domain.Record{record})
}

func appendInputFor(userID string, token domain.Token) ledgerdto.AppendInput {
	switch t := token.(type) {
	case domain.AutomatedToken:
		return ledgerdto.AppendInput{UserID: userID, Type: typeAutomated, Category: string(t.Category), Amount: t.Amount}
	case domain.MoodToken:
		return ledgerdto.AppendInput{UserID: userID, Type: typeMood, Mood: t.Label, Amount: 1}
	default:
		return ledgerdto.AppendInput{UserID: userID}
	}
}
