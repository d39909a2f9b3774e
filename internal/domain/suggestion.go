package domain

// SuggestionFallbackDescription is returned when a suggestion cannot be generated.
const SuggestionFallbackDescription = "No se pudo generar una descripción automática."

// TaskSuggestion is a generated description and subtask list for a task title.
type TaskSuggestion struct {
	Description string   `json:"description"`
	Subtasks    []string `json:"subtasks"`
}

// FallbackSuggestion returns the suggestion served when generation fails.
func FallbackSuggestion() *TaskSuggestion {
	return &TaskSuggestion{
		Description: SuggestionFallbackDescription,
		Subtasks:    []string{},
	}
}
