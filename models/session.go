package models

// Phase is one of the three sequential stages of an evaluation session.
type Phase string

const (
	PhaseUpload  Phase = "upload"
	PhaseQA      Phase = "qa"
	PhaseResults Phase = "results"
)
