package domain

import "time"

// CandidateRecord represents an unidentified-person case as returned by a
// source database, normalised to the shared attribute shape. Narrative
// fields and media URLs are carried for display and never scored.
type CandidateRecord struct {
	// CaseID is the source's identifier for the case.
	CaseID string

	// Source is the name of the database the record came from.
	Source string

	// CaseURL links to the case page at the source.
	CaseURL string

	// Attributes holds the recorded physical characteristics.
	Attributes Attributes

	// Location is where the person was found.
	Location Location

	// DateFound is when the person was found, if known.
	DateFound *time.Time

	// Circumstances describes how the case was discovered.
	Circumstances string

	// Clothing describes clothing found with the person.
	Clothing string

	// PersonalItems lists items found with the person.
	PersonalItems []string

	// Photos holds URLs to case photographs.
	Photos []string

	// LastUpdated is when the source last touched the record.
	LastUpdated time.Time
}
