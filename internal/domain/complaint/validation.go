package complaint

import (
	"fmt"
	"strings"
)

// ParseStatus resolves a caller-supplied status string. Matching is
// case-insensitive; anything outside the three defined values is rejected.
func ParseStatus(raw string) (Status, error) {
	switch Status(strings.ToUpper(strings.TrimSpace(raw))) {
	case StatusNotStarted:
		return StatusNotStarted, nil
	case StatusStarted:
		return StatusStarted, nil
	case StatusComplete:
		return StatusComplete, nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, raw)
}

// ParsePriority resolves a caller-supplied priority string, case-insensitively.
func ParsePriority(raw string) (Priority, error) {
	switch Priority(strings.ToUpper(strings.TrimSpace(raw))) {
	case PriorityLow:
		return PriorityLow, nil
	case PriorityNormal:
		return PriorityNormal, nil
	case PriorityHigh:
		return PriorityHigh, nil
	}
	return "", fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, raw)
}

// ValidateCreateInput validates fields required to file a complaint.
func ValidateCreateInput(req CreateRequest) error {
	if req.ResidentID <= 0 {
		return fmt.Errorf("%w: resident id must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Subject) == "" {
		return fmt.Errorf("%w: subject must not be empty", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Description) == "" {
		return fmt.Errorf("%w: description must not be empty", ErrInvalidInput)
	}
	return nil
}

// cleanAttachments trims every entry and discards blank ones.
func cleanAttachments(paths []string) []string {
	var cleaned []string
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		cleaned = append(cleaned, p)
	}
	return cleaned
}
