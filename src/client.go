package fichegen

// Client is the opaque text-in/text-out generation service. The pipeline
// never assumes anything about the provider beyond this contract.
type Client interface {
	SendMessage(systemPrompt, userPrompt string) (string, error)
}
