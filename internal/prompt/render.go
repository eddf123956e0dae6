package prompt

import (
	"strings"

	"syntaxquiz/internal/completion"
)

// RecordFormat is the literal record shape the completion service is asked to emit.
const RecordFormat = `QuestionCard(question: "<question_text>", answer: <true_or_false>)`

// BuildPrompt returns the instruction text for a language's question set.
func BuildPrompt(language string) string {
	var builder strings.Builder
	builder.WriteString("Generate a list of true or false questions for ")
	builder.WriteString(language)
	builder.WriteString(" syntax. Each question should follow this format exactly: ")
	builder.WriteString(RecordFormat)
	return builder.String()
}

// BuildRequest wraps the prompt as a one-turn history followed by the
// language name as the new user message.
func BuildRequest(language string) completion.Request {
	return completion.Request{
		History: []completion.Message{{
			Role: completion.RoleUser,
			Text: BuildPrompt(language),
		}},
		Message: language,
	}
}
