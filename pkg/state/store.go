// Package state holds the current project and specification lists that one page
// writes and others read across navigations. Lists are replaced wholesale, never
// merged, and the last writer wins. State is kept per X-WebAuth-User.
package state

import (
	"context"

	"github.com/edea-dev/msweb/pkg/msmodel"
)

type Store interface {
	Projects(ctx context.Context, user string) ([]msmodel.Project, error)
	ReplaceProjects(ctx context.Context, user string, projects []msmodel.Project) error
	Specifications(ctx context.Context, user string) ([]msmodel.Specification, error)
	ReplaceSpecifications(ctx context.Context, user string, specs []msmodel.Specification) error
}
