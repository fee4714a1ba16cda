package schema

import "github.com/edea-dev/msweb/pkg/msmodel"

// ParseSpecification validates in as a specification. unit defaults to "".
func ParseSpecification(in Input) (msmodel.Specification, FieldErrors) {
	r := newFieldReader(in)
	s := msmodel.Specification{
		ID:        r.nullableInt("id"),
		ProjectID: r.int("project_id"),
		Name:      r.string("name"),
		Unit:      r.stringDefault("unit", ""),
		Minimum:   r.float("minimum"),
		Typical:   r.float("typical"),
		Maximum:   r.float("maximum"),
	}

	checkRules(s, r.errs)

	return s, r.errs
}

func EncodeSpecification(s msmodel.Specification) Input {
	in := Input{
		"id":         nil,
		"project_id": s.ProjectID,
		"name":       s.Name,
		"unit":       s.Unit,
		"minimum":    s.Minimum,
		"typical":    s.Typical,
		"maximum":    s.Maximum,
	}
	if s.ID != nil {
		in["id"] = *s.ID
	}

	return in
}
