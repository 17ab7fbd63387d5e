package handlers

const (
	// Upper bound on the fret_count query/body parameter; the chromatic index caps it further per tuning
	maxFretCount = 36

	// Largest accepted settings import document
	maxImportBytes = 1 << 20

	yamlContentType = "application/x-yaml"
)
