package gemini

import (
	"bytes"
	"fmt"
	"text/template"

	"google.golang.org/genai"
)

const promptText = `Actúa como un experto en productividad. El usuario quiere crear una tarea titulada: "{{.Title}}".
1. Genera una descripción breve pero profesional y clara para esta tarea.
2. Genera una lista de {{.SubtaskCount}} pasos o subtareas clave para completarla.

Devuelve la respuesta estrictamente en JSON.`

// subtaskCount is the number of subtasks requested from the model.
const subtaskCount = 3

var promptTemplate = template.Must(template.New("suggestion").Parse(promptText))

type promptData struct {
	Title        string
	SubtaskCount int
}

func renderPrompt(title string) (string, error) {
	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, promptData{Title: title, SubtaskCount: subtaskCount}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}

// responseSchema describes the JSON object the model must return.
func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"description": {
				Type:        genai.TypeString,
				Description: "Una descripción clara y profesional de la tarea.",
			},
			"subtasks": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Lista de 3 pasos accionables para completar la tarea.",
			},
		},
		Required: []string{"description", "subtasks"},
	}
}

// suggestionResponse mirrors responseSchema.
type suggestionResponse struct {
	Description string   `json:"description"`
	Subtasks    []string `json:"subtasks"`
}
