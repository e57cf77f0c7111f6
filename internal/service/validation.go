package service

import (
	"github.com/venturebase/backoffice/config"
)

// Program 바이트 길이 제한 (UTF-8 기준)
const (
	maxTitleBytes    = 255
	maxContentBytes  = 30000
	maxShortcutBytes = 255
)

// validCategory checks membership in the collection's fixed category set.
// An empty value is a presence question, not a membership one, and passes.
func validCategory(rules config.CollectionRules, category string) bool {
	if category == "" {
		return true
	}
	for _, c := range rules.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// checkRequired enforces the collection's validation profile. present maps
// profile field names to whether the request carried a non-empty value.
func checkRequired(rules config.CollectionRules, present map[string]bool) error {
	for _, field := range rules.Required {
		if present[field] {
			continue
		}
		switch field {
		case "logo":
			return newValidationError(msgLogoRequired)
		case "thumbnail":
			return newValidationError(msgThumbnailRequired)
		case "image":
			return newValidationError(msgImagesRequired)
		default:
			return newValidationError(msgMissingFields)
		}
	}
	return nil
}

// checkProgramLengths validates the byte-length bounds on the supplied
// fields only; nil means the field was not part of the request.
func checkProgramLengths(title, content, shortcut *string) error {
	if title != nil && len(*title) > maxTitleBytes {
		return newValidationError(msgTitleTooLong)
	}
	if content != nil && len(*content) > maxContentBytes {
		return newValidationError(msgContentTooLong)
	}
	if shortcut != nil && len(*shortcut) > maxShortcutBytes {
		return newValidationError(msgShortcutTooLong)
	}
	return nil
}
