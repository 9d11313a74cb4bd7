package store

import (
	"time"

	"quotely/internal/domain/entities"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Seed returns the initial dataset applied when no snapshot exists yet.
// Ids are stable literals so a freshly seeded instance is deterministic.
func Seed() *entities.Snapshot {
	return &entities.Snapshot{
		Domains: []entities.BusinessDomain{
			{ID: "bd1", Name: "Ground", HourlyRate: 99, CreatedBy: "Franck", UpdatedAt: day(2025, 1, 28)},
			{ID: "bd2", Name: "Finance", HourlyRate: 110, CreatedBy: "Kees", UpdatedAt: day(2025, 1, 28)},
			{ID: "bd3", Name: "E&M", HourlyRate: 86, CreatedBy: "Mabel", UpdatedAt: day(2025, 1, 28)},
			{
				ID: "bd4", Name: "Hr", HourlyRate: 116.75, CreatedBy: "Mabel", UpdatedAt: day(2025, 1, 28),
				RateComponents: []entities.RateComponent{
					{ID: "rc-bd4-1", Label: "Base Rate", Value: 100},
					{ID: "rc-bd4-2", Label: "Management Fee", Value: 16.75},
				},
			},
		},
		Projects: []entities.Project{
			{ID: "p1", Name: "Ursula", Description: "Main architecture revamp", CreatedBy: "Franck", UpdatedAt: day(2025, 1, 28)},
			{ID: "p2", Name: "Victory", Description: "New mobile app rollout", CreatedBy: "Mabel", UpdatedAt: day(2025, 1, 28)},
			{ID: "p3", Name: "SkyNet", Description: "Automated baggage handling", CreatedBy: "Kees", UpdatedAt: day(2025, 2, 10)},
		},
		Contacts: []entities.Contact{
			{ID: "c1", Name: "Franck", Email: "franck@example.com", Note: "Main person for ground", CreatedBy: "Admin", UpdatedAt: day(2025, 1, 28)},
			{ID: "c2", Name: "Kees", Email: "kees@example.com", Note: "Finance stakeholder", CreatedBy: "Admin", UpdatedAt: day(2025, 1, 28)},
			{ID: "c3", Name: "Henk", Email: "henk@example.com", Note: "Architecture requester", CreatedBy: "Admin", UpdatedAt: day(2025, 1, 28)},
		},
		Quotes: []entities.Quote{
			{
				ID: "q1", Title: "Architecture Review", Status: entities.QuoteStatusApproved,
				BusinessDomainID: "bd1", ProjectID: "p1", ContactID: "c3",
				PricePerHour: 100, TotalHours: 40, TotalPoints: 60, TotalPrice: 4000,
				Description: "Reverting workflow status criteria",
				RequestDate: day(2024, 11, 15), CreatedBy: "Jon Snow", UpdatedAt: day(2024, 11, 20),
				ShareToken: "token-q1",
			},
			{
				ID: "q2", Title: "Mobile App Discovery", Status: entities.QuoteStatusApproved,
				BusinessDomainID: "bd2", ProjectID: "p2", ContactID: "c1",
				PricePerHour: 110, TotalHours: 80, TotalPoints: 120, TotalPrice: 8800,
				Description: "UX/UI Phase for Victory project",
				RequestDate: day(2024, 12, 5), CreatedBy: "Jon Snow", UpdatedAt: day(2024, 12, 10),
				ShareToken: "token-q2",
			},
			{
				ID: "q3", Title: "Baggage Automation Backend", Status: entities.QuoteStatusWaiting,
				BusinessDomainID: "bd3", ProjectID: "p3", ContactID: "c2",
				PricePerHour: 86, TotalHours: 120, TotalPoints: 200, TotalPrice: 10320,
				Description: "Core logic for SkyNet",
				RequestDate: day(2025, 1, 10), CreatedBy: "Jon Snow", UpdatedAt: day(2025, 1, 15),
				ShareToken: "token-q3",
			},
			{
				ID: "q4", Title: "Cloud Migration", Status: entities.QuoteStatusDraft,
				BusinessDomainID: "bd1", ProjectID: "p1", ContactID: "c3",
				PricePerHour: 100, TotalHours: 250, TotalPoints: 400, TotalPrice: 25000,
				Description: "Transitioning legacy servers",
				RequestDate: day(2025, 2, 1), CreatedBy: "Jon Snow", UpdatedAt: day(2025, 2, 12),
				ShareToken: "token-q4",
			},
			{
				ID: "q5", Title: "Security Audit", Status: entities.QuoteStatusApproved,
				BusinessDomainID: "bd2", ProjectID: "p2", ContactID: "c1",
				PricePerHour: 110, TotalHours: 20, TotalPoints: 30, TotalPrice: 2200,
				Description: "Annual compliance check",
				RequestDate: day(2025, 1, 20), CreatedBy: "Jon Snow", UpdatedAt: day(2025, 1, 25),
				ShareToken: "token-q5",
			},
		},
		Templates: []entities.Quote{
			{
				ID: "t-fasttrack", Title: "FastTrack Quote Template", Status: entities.QuoteStatusDraft,
				BusinessDomainID: "bd1",
				PricePerHour:     100, TotalHours: 76, TotalPrice: 7600,
				Description: "Standard FastTrack configuration for quick project kick-offs.",
				RequestDate: day(2025, 1, 1), CreatedBy: "System", UpdatedAt: day(2025, 1, 1),
				ShareToken: "token-t-fasttrack",
			},
		},
		Sections: []entities.QuoteSection{
			{ID: "ts-ft-1", QuoteID: "t-fasttrack", Title: "General actions", SortOrder: 0},
			{ID: "ts-ft-2", QuoteID: "t-fasttrack", Title: "Must Haves", SortOrder: 1},
			{ID: "ts-ft-3", QuoteID: "t-fasttrack", Title: "Nice to haves", SortOrder: 2},
		},
		LineItems: []entities.QuoteLineItem{
			{ID: "li1", QuoteID: "q1", Title: "Reverting workflow status criteria", Description: "To old version", Hours: 8, StoryPoints: 8, SortOrder: 0},
			{ID: "li2", QuoteID: "q1", Title: "Reimplementing Phase code criteria", Description: "Correcting tests", Hours: 8, StoryPoints: 8, SortOrder: 1},
			{ID: "li3", QuoteID: "q1", Title: "Implementing RDY criteria changes", Description: "New tests", Hours: 8, StoryPoints: 8, SortOrder: 2},
			{ID: "li4", QuoteID: "q1", Title: "General communication", Hours: 8, StoryPoints: 8, SortOrder: 3},
			{ID: "li5", QuoteID: "q1", Title: "Deployments including backups", Description: "Standby on live", Hours: 8, StoryPoints: 8, SortOrder: 4},
			{ID: "tli-ft-1", QuoteID: "t-fasttrack", SectionID: "ts-ft-1", Title: "Analysis", Hours: 20, SortOrder: 0},
			{ID: "tli-ft-2", QuoteID: "t-fasttrack", SectionID: "ts-ft-1", Title: "Deployment", Hours: 24, SortOrder: 1},
			{ID: "tli-ft-3", QuoteID: "t-fasttrack", SectionID: "ts-ft-1", Title: "UAT support", Hours: 8, SortOrder: 2},
			{ID: "tli-ft-4", QuoteID: "t-fasttrack", SectionID: "ts-ft-1", Title: "Technical design", Hours: 10, SortOrder: 3},
			{ID: "tli-ft-5", QuoteID: "t-fasttrack", SectionID: "ts-ft-1", Title: "Testing", Hours: 10, SortOrder: 4},
			{ID: "tli-ft-6", QuoteID: "t-fasttrack", SectionID: "ts-ft-1", Title: "Documentation", Hours: 4, SortOrder: 5},
		},
	}
}
