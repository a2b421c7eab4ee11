package usecase

// Export unexported functions for testing
var (
	BuildUserPromptForTest  = buildUserPrompt
	BuildImagePromptForTest = buildImagePrompt
	SystemPromptForTest     = systemPrompt
)
