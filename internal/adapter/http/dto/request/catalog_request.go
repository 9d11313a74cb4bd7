package request

import (
	"quotely/internal/domain/entities"
)

// SaveProjectRequest creates or updates a project. An empty ID means
// create.
type SaveProjectRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	CreatedBy   string `json:"created_by"`
}

func (r SaveProjectRequest) ToEntity() entities.Project {
	return entities.Project{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedBy:   r.CreatedBy,
	}
}

type SaveContactRequest struct {
	ID        string `json:"id"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Note      string `json:"note"`
	CreatedBy string `json:"created_by"`
}

func (r SaveContactRequest) ToEntity() entities.Contact {
	return entities.Contact{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Note:      r.Note,
		CreatedBy: r.CreatedBy,
	}
}

type RateComponentRequest struct {
	ID    string  `json:"id"`
	Label string  `json:"label" binding:"required"`
	Value float64 `json:"value"`
}

// SaveDomainRequest creates or updates a business domain. When rate
// components are present the submitted hourly rate is ignored and derived
// from the component sum instead.
type SaveDomainRequest struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name" binding:"required"`
	HourlyRate     float64                `json:"hourly_rate"`
	RateComponents []RateComponentRequest `json:"rate_components"`
	CreatedBy      string                 `json:"created_by"`
}

func (r SaveDomainRequest) ToEntity() entities.BusinessDomain {
	var components []entities.RateComponent
	if len(r.RateComponents) > 0 {
		components = make([]entities.RateComponent, len(r.RateComponents))
		for i, rc := range r.RateComponents {
			components[i] = entities.RateComponent{ID: rc.ID, Label: rc.Label, Value: rc.Value}
		}
	}
	return entities.BusinessDomain{
		ID:             r.ID,
		Name:           r.Name,
		HourlyRate:     r.HourlyRate,
		RateComponents: components,
		CreatedBy:      r.CreatedBy,
	}
}
