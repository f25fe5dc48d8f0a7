package huggingface

// labelScore is a single classification result from an inference endpoint.
type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// tokenTag is a single token-classification result. Aggregated responses use
// entity_group; raw responses use entity.
type tokenTag struct {
	EntityGroup string  `json:"entity_group"`
	Entity      string  `json:"entity"`
	Word        string  `json:"word"`
	Score       float64 `json:"score"`
	Start       int     `json:"start"`
	End         int     `json:"end"`
}

// inferenceRequest is the request body for classification endpoints.
type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

// apiError is the error body returned by the Inference API.
type apiError struct {
	Error string `json:"error"`
}

// Chat completion wire types for the router endpoint.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
	TopP        float64       `json:"top_p,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}
