package entity

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult drives the hidden/visible toggle of the main interface section.
type LoginResult struct {
	Visible bool   `json:"visible"`
	Status  string `json:"status"`
}

type ExplainRequest struct {
	Concept  string `json:"concept"`
	Language string `json:"language"`
}

type ExplainResponse struct {
	ConceptExplanation string `json:"concept_explanation"`
}

type QuizResponse struct {
	Quiz string `json:"quiz"`
}

// GenerateResponse carries the two independent outputs of the combined action.
type GenerateResponse struct {
	ConceptExplanation string `json:"concept_explanation"`
	Quiz               string `json:"quiz"`
}

type LanguageDTO struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Default bool   `json:"default"`
}

type ModelStatus struct {
	Model   string `json:"model"`
	Backend string `json:"backend"`
	Enabled bool   `json:"enabled"`
}

type ExportRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}
