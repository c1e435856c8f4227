package ui

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/google/uuid"

	"github.com/opd-ai/fichegen/srv/generator"
)

var (
	errBadForm      = errors.New("failed to parse form")
	errMissingTopic = errors.New("topic is required")
)

func isValidSession(sessionID string) bool {
	if sessionID == "" {
		return false
	}
	_, err := uuid.Parse(sessionID)
	return err == nil
}

// formatMessages renders progress messages as HTML snippets for the polling
// fallback endpoint.
func formatMessages(messages []generator.WSMessage) string {
	var b strings.Builder
	for _, msg := range messages {
		b.WriteString(fmt.Sprintf(`
            <div class="message %s">
                <div class="message-header">
                    <span>%s</span>
                    <span>%s</span>
                </div>
                %s
                %s
            </div>
        `,
			msg.Status,
			msg.Status,
			msg.Timestamp.Format("15:04:05"),
			formatContent(msg.Message),
			formatOutput(msg.Output),
		))
	}
	return b.String()
}

func formatContent(content string) string {
	if content == "" {
		return ""
	}
	return fmt.Sprintf("<p class=\"message-content\">%s</p>", html.EscapeString(content))
}

func formatOutput(output string) string {
	if output == "" {
		return ""
	}
	return fmt.Sprintf("<pre class=\"message-output\">%s</pre>", html.EscapeString(output))
}
