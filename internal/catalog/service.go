package catalog

// CatalogService answers catalog reads from configuration alone; there is
// no store behind it.
type CatalogService interface {
	Embeddings() []EmbeddingModelView
	Chats(scenario UsageScenario) []ChatModelView
}

type catalogService struct {
	opts Options
}

func NewCatalogService(opts Options) CatalogService {
	return &catalogService{opts: opts}
}

// Embeddings returns the embedding models that have at least one endpoint.
func (s *catalogService) Embeddings() []EmbeddingModelView {
	out := make([]EmbeddingModelView, 0, len(s.opts.Embeddings))
	for _, m := range s.opts.Embeddings {
		if len(m.Endpoints) == 0 {
			continue
		}
		out = append(out, EmbeddingModelView{
			Name:        m.Name,
			Value:       m.Value,
			Description: m.Description,
			Icon:        m.Icon,
			Dimension:   m.Dimension,
			Developer:   m.Developer,
			Languages:   m.Languages,
		})
	}
	return out
}

// Chats returns the chat models that have at least one endpoint, flagging
// those disabled for the given scenario.
func (s *catalogService) Chats(scenario UsageScenario) []ChatModelView {
	out := make([]ChatModelView, 0, len(s.opts.Chats))
	for _, m := range s.opts.Chats {
		if len(m.Endpoints) == 0 {
			continue
		}
		view := ChatModelView{
			Name:             m.Name,
			Value:            m.Value,
			Description:      m.Description,
			Icon:             m.Icon,
			MaxContextTokens: m.MaxContextTokens,
			Series:           m.Series,
		}
		for _, disabled := range m.DisableUsageScenarios {
			if disabled == scenario {
				view.Disable = true
				break
			}
		}
		out = append(out, view)
	}
	return out
}
