package msmodel

// Specification holds the expected range for a measured quantity in a project.
// Minimum <= Typical <= Maximum is what the values mean but nothing enforces it.
type Specification struct {
	ID        *int    `json:"id"`
	ProjectID int     `json:"project_id" validate:"min=1"`
	Name      string  `json:"name" validate:"required"`
	Unit      string  `json:"unit"`
	Minimum   float64 `json:"minimum"`
	Typical   float64 `json:"typical"`
	Maximum   float64 `json:"maximum"`
}

func (s Specification) Identity() *int {
	return s.ID
}

func SpecificationsForProject(specs []Specification, projectID int) []Specification {
	matching := make([]Specification, 0, len(specs))
	for _, spec := range specs {
		if spec.ProjectID == projectID {
			matching = append(matching, spec)
		}
	}

	return matching
}
