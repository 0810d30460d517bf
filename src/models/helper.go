package models

import (
	"fmt"
	"os"
)

// Default model for the GitHub Models catalog.
const defaultGitHubModel = "openai/gpt-4o"

// FromEnvironment selects and constructs a Model from the API_HOST
// environment variable: "azure" (managed cloud endpoint), "ollama" (local
// server), "github" (hosted model catalog, the default), or "openai"
// (generic API-key endpoint). The returned string names the model and host
// for display. Missing credentials or identifiers fail here, before any
// run starts.
func FromEnvironment() (Model, string, error) {
	host := os.Getenv("API_HOST")
	if host == "" {
		host = "github"
	}

	switch host {
	case "azure":
		endpoint := os.Getenv("AZURE_OPENAI_ENDPOINT")
		deployment := os.Getenv("AZURE_OPENAI_CHAT_DEPLOYMENT")
		apiKey := os.Getenv("AZURE_OPENAI_API_KEY")
		if endpoint == "" || deployment == "" {
			return nil, "", fmt.Errorf("azure host requires AZURE_OPENAI_ENDPOINT and AZURE_OPENAI_CHAT_DEPLOYMENT")
		}
		return NewAzureLLM(endpoint, apiKey, deployment), deployment + " on azure", nil

	case "ollama":
		model := os.Getenv("OLLAMA_MODEL")
		if model == "" {
			return nil, "", fmt.Errorf("ollama host requires OLLAMA_MODEL")
		}
		llm, err := NewOllamaLLM(model)
		if err != nil {
			return nil, "", err
		}
		return llm, model + " on ollama", nil

	case "github":
		token := os.Getenv("GITHUB_TOKEN")
		if token == "" {
			return nil, "", fmt.Errorf("github host requires GITHUB_TOKEN")
		}
		model := os.Getenv("GITHUB_MODEL")
		if model == "" {
			model = defaultGitHubModel
		}
		return NewOpenAICompatibleLLM(GitHubModelsBaseURL, token, model), model + " on github", nil

	case "openai":
		model := os.Getenv("OPENAI_MODEL")
		if model == "" {
			return nil, "", fmt.Errorf("openai host requires OPENAI_MODEL")
		}
		return NewOpenAILLM(model), model + " on openai", nil

	default:
		return nil, "", fmt.Errorf("unknown API_HOST: %s", host)
	}
}
