package model

// Recognized values of the `type` discriminant column shared by all
// evaluation documents. Kept verbatim from the original collection schema so
// exported data stays comparable across runs.
const (
	DocTypeUndersokelse       = "undersokelse"
	DocTypeUserConfig         = "user_config"
	DocTypeArtikkelEvaluering = "artikkel_evaluering"
)
