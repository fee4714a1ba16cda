package schema

import "github.com/edea-dev/msweb/pkg/msmodel"

// ParseProject validates in as a project. The returned errors are empty when the
// project is valid.
func ParseProject(in Input) (msmodel.Project, FieldErrors) {
	r := newFieldReader(in)
	p := msmodel.Project{
		ID:        r.nullableInt("id"),
		ShortCode: r.nullableString("short_code"),
		Name:      r.string("name"),
	}

	checkRules(p, r.errs)

	return p, r.errs
}

func EncodeProject(p msmodel.Project) Input {
	in := Input{"name": p.Name, "id": nil, "short_code": nil}
	if p.ID != nil {
		in["id"] = *p.ID
	}
	if p.ShortCode != nil {
		in["short_code"] = *p.ShortCode
	}

	return in
}
