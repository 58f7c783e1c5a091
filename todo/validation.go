package todo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTitle is returned when a todo title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a todo title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrDescriptionTooLong is returned when a description exceeds MaxDescriptionLength.
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")

	// ErrInvalidPriority is returned when an unknown priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrTooManyTags is returned when a todo has more than MaxTags tags.
	ErrTooManyTags = errors.New("too many tags")

	// ErrEmptyCategoryName is returned when a category name is empty.
	ErrEmptyCategoryName = errors.New("category name cannot be empty")

	// ErrMissingID is returned when a stored record has no ID.
	ErrMissingID = errors.New("record is missing an id")
)

// ValidateTitle checks if the title is valid. The engine itself does not
// enforce titles; frontends call this before creating or renaming a todo.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}

// ValidateDescription checks if the description is valid.
func ValidateDescription(description string) error {
	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("%w: %d > %d", ErrDescriptionTooLong, len(description), MaxDescriptionLength)
	}
	return nil
}

// ValidatePriority checks if the priority is valid.
func ValidatePriority(priority Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, priority)
	}
	return nil
}

// ValidateTags checks that tags do not exceed MaxTags distinct non-empty
// values. Like titles, this is enforced by frontends; the engine silently
// caps instead.
func ValidateTags(tags []string) error {
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if tag != "" {
			seen[tag] = true
		}
	}
	if len(seen) > MaxTags {
		return fmt.Errorf("%w: %d > %d", ErrTooManyTags, len(seen), MaxTags)
	}
	return nil
}

// NormalizeTags deduplicates tags preserving order, drops empties, and caps
// the result at MaxTags.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		normalized = append(normalized, tag)
		if len(normalized) == MaxTags {
			break
		}
	}
	if len(normalized) == 0 {
		return nil
	}
	return normalized
}
