// Package gemini implements task suggestions on top of Google's Gemini API.
//
// Suggester renders a prompt for a task title, asks the model for a JSON
// object matching a fixed response schema (description plus subtasks), and
// converts it into a domain.TaskSuggestion. Transient API failures are retried
// with exponential backoff; malformed or blocked responses are not.
//
// The package depends on google.golang.org/genai for the API client.
package gemini
