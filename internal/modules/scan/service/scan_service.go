package service

import (
	"fmt"

	"tokenhub/internal/modules/scan/domain"
)

// ScanService holds the stateless pieces of scan processing: message
// wording and per-category limit selection.
type ScanService struct{}

func NewScanService() *ScanService {
	return &ScanService{}
}

func (s *ScanService) LimitFor(category domain.Category, steps, sleep int) int {
	switch category {
	case domain.CategorySteps:
		return steps
	case domain.CategorySleep:
		return sleep
	default:
		return 0
	}
}

func (s *ScanService) SuccessMessage(token domain.Token) string {
	switch t := token.(type) {
	case domain.AutomatedToken:
		return fmt.Sprintf("Saved: %d %s token(s).", t.Amount, t.Category.DisplayName())
	case domain.MoodToken:
		return fmt.Sprintf("Saved mood: %s.", t.Label)
	default:
		return "Scan saved."
	}
}

func (s *ScanService) UnavailableMessage(category domain.Category) string {
	return fmt.Sprintf("No %s tokens available for today.", category.DisplayName())
}

func (s *ScanService) ExhaustedMessage(category domain.Category) string {
	return fmt.Sprintf("No %s tokens remaining for today.", category.DisplayName())
}

func (s *ScanService) DeprecatedCategoryMessage() string {
	return "Heart rate tokens are no longer supported."
}
