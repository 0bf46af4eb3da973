// Package services orchestrates repositories: parent-existence validation,
// partial-update field selection and the stage-to-published promotion.
package services

import "errors"

// Not-found conditions surface as 404 at the transport boundary, constraint
// violations as 400, repeat promotion as 409.
var (
	ErrUserNotFound          = errors.New("User not found")
	ErrSubjectNotFound       = errors.New("Subject not found")
	ErrChapterNotFound       = errors.New("Chapter not found")
	ErrTopicNotFound         = errors.New("Topic not found")
	ErrQuestionNotFound      = errors.New("Question not found")
	ErrStageQuestionNotFound = errors.New("StageQuestion not found")
	ErrSettingsNotFound      = errors.New("Settings not found")
	ErrMockTestNotFound      = errors.New("MockTest not found")

	ErrDuplicateUser   = errors.New("Email already registered")
	ErrAlreadyPromoted = errors.New("StageQuestion already promoted")
)
