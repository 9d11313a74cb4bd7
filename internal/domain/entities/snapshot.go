package entities

// Snapshot is the full persisted state: all seven collections, saved and
// loaded together. The snapshot store persists each collection under its
// own namespaced key but treats the set as one atomic unit.
type Snapshot struct {
	Quotes    []Quote          `json:"quotes"`
	Templates []Quote          `json:"templates"`
	Projects  []Project        `json:"projects"`
	Contacts  []Contact        `json:"contacts"`
	Domains   []BusinessDomain `json:"domains"`
	Sections  []QuoteSection   `json:"sections"`
	LineItems []QuoteLineItem  `json:"line_items"`
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := &Snapshot{
		Quotes:    append([]Quote(nil), s.Quotes...),
		Templates: append([]Quote(nil), s.Templates...),
		Projects:  append([]Project(nil), s.Projects...),
		Contacts:  append([]Contact(nil), s.Contacts...),
		Sections:  append([]QuoteSection(nil), s.Sections...),
		LineItems: append([]QuoteLineItem(nil), s.LineItems...),
	}
	out.Domains = make([]BusinessDomain, len(s.Domains))
	for i, d := range s.Domains {
		out.Domains[i] = d.Clone()
	}
	return out
}
