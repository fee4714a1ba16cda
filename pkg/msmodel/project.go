package msmodel

// Project is the top level grouping for test runs and specifications. ShortCode is
// the identifier used in page URLs, the backend accepts it anywhere an id is accepted.
type Project struct {
	ID        *int    `json:"id"`
	ShortCode *string `json:"short_code" validate:"omitempty,max=64"`
	Name      string  `json:"name" validate:"required"`
}

func (p Project) Identity() *int {
	return p.ID
}

// Ident returns the value used to address the project in backend paths, preferring
// the numeric id over the short code.
func (p Project) Ident() string {
	switch {
	case p.ID != nil:
		return itoa(*p.ID)
	case p.ShortCode != nil:
		return *p.ShortCode
	default:
		return ""
	}
}

func (p Project) HasShortCode(code string) bool {
	return p.ShortCode != nil && *p.ShortCode == code
}
