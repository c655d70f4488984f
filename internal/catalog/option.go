// Package catalog serves the model catalog: a read-only view over the
// deployment's configured embedding and chat models.
package catalog

// UsageScenario identifies where a chat model is being selected for.
type UsageScenario string

const (
	ScenarioChat      UsageScenario = "chat"
	ScenarioAgent     UsageScenario = "agent"
	ScenarioKnowledge UsageScenario = "knowledge"
	ScenarioWorkflow  UsageScenario = "workflow"
)

// ParseUsageScenario validates a scenario path parameter.
func ParseUsageScenario(s string) (UsageScenario, bool) {
	switch UsageScenario(s) {
	case ScenarioChat, ScenarioAgent, ScenarioKnowledge, ScenarioWorkflow:
		return UsageScenario(s), true
	}
	return "", false
}

// Endpoint is one upstream serving a model. API keys never leave the
// server; endpoints are stripped from catalog responses.
type Endpoint struct {
	URL           string `yaml:"url"`
	APIKey        string `yaml:"apiKey"`
	RPM           int    `yaml:"rpm"`
	TPM           int    `yaml:"tpm"`
	ModelProvider string `yaml:"modelProvider"`
}

type EmbeddingModel struct {
	Name        string     `yaml:"name"`
	Value       string     `yaml:"value"`
	Description string     `yaml:"description"`
	Icon        string     `yaml:"icon"`
	Dimension   int        `yaml:"dimension"`
	Developer   string     `yaml:"developer"`
	Languages   []string   `yaml:"languages"`
	Endpoints   []Endpoint `yaml:"endpoints"`
}

type ChatModel struct {
	Name                  string          `yaml:"name"`
	Value                 string          `yaml:"value"`
	Description           string          `yaml:"description"`
	Icon                  string          `yaml:"icon"`
	MaxContextTokens      int             `yaml:"maxContextTokens"`
	Series                string          `yaml:"series"`
	DisableUsageScenarios []UsageScenario `yaml:"disableUsageScenarios"`
	Endpoints             []Endpoint      `yaml:"endpoints"`
}

// Options is the model-catalog section of the options file.
type Options struct {
	Embeddings []EmbeddingModel `yaml:"embeddings"`
	Chats      []ChatModel      `yaml:"chats"`
}

// EmbeddingModelView is the client-facing shape, without endpoints.
type EmbeddingModelView struct {
	Name        string   `json:"name"`
	Value       string   `json:"value"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Dimension   int      `json:"dimension"`
	Developer   string   `json:"developer"`
	Languages   []string `json:"languages"`
}

// ChatModelView is the client-facing shape; Disable marks models whose
// configuration excludes the requested usage scenario.
type ChatModelView struct {
	Name             string `json:"name"`
	Value            string `json:"value"`
	Description      string `json:"description"`
	Icon             string `json:"icon"`
	MaxContextTokens int    `json:"maxContextTokens"`
	Series           string `json:"series"`
	Disable          bool   `json:"disable"`
}
