package pages

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/edea-dev/msweb/pkg/clog"
	"github.com/edea-dev/msweb/pkg/msapi"
	"github.com/edea-dev/msweb/pkg/msmodel"
	"github.com/edea-dev/msweb/pkg/tables"
	"golang.org/x/sync/errgroup"
)

const stateWriteTimeout = 5 * time.Second

// Projects lists every project and remembers the list for the navigation and for
// slug lookups on later loads.
func Projects(ev *Event) (*Page, error) {
	projects, err := getJSON[[]msmodel.Project](ev, "/projects")
	if err != nil {
		return nil, err
	}

	if err := ev.State.ReplaceProjects(ev.Ctx, ev.Identity.User, projects); err != nil {
		clog.UsingCtx(clog.CtxPages).WithError(err).Warn("Unable to store projects")
	}

	return NewPage().
		Set("projects", projects).
		Set("columns", tables.ProjectColumns()), nil
}

// ResolveProject finds the project addressed by slug, first in the remembered
// project list (by short code, then by id) and otherwise by asking the backend.
func ResolveProject(ev *Event, slug string) (msmodel.Project, error) {
	projects, err := ev.State.Projects(ev.Ctx, ev.Identity.User)
	if err != nil {
		clog.UsingCtx(clog.CtxPages).WithError(err).Warn("Unable to read stored projects")
	}

	for _, p := range projects {
		if p.ID != nil && p.HasShortCode(slug) {
			return p, nil
		}
	}

	for _, p := range projects {
		if p.ID != nil && p.Ident() == slug {
			return p, nil
		}
	}

	return getJSON[msmodel.Project](ev, msapi.Path("projects", slug))
}

func Project(ev *Event) (*Page, error) {
	slug := ev.Param("slug")
	project, err := ResolveProject(ev, slug)
	if err != nil {
		return nil, err
	}

	id := project.Ident()
	if id == "" {
		id = slug
	}

	rememberSpecs := func(specs []msmodel.Specification) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ev.Ctx), stateWriteTimeout)
		defer cancel()

		if err := ev.State.ReplaceSpecifications(ctx, ev.Identity.User, specs); err != nil {
			clog.UsingCtx(clog.CtxPages).WithError(err).Warn("Unable to store specifications")
		}
	}

	return NewPage().
		Set("project", project).
		Set("name", slug).
		Set("testrun_columns", tables.TestRunColumns()).
		Set("specification_columns", tables.SpecificationColumns()).
		Defer("testruns", deferGet[[]msmodel.TestRun](ev, msapi.Path("testruns", "project", id))).
		Defer("specifications", deferGet(ev, msapi.Path("specifications", "project", id), rememberSpecs)), nil
}

// Compare loads the project and all requested runs concurrently. Any failed fetch
// fails the comparison.
func Compare(ev *Event) (*Page, error) {
	projectID := strings.TrimSpace(ev.Query.Get("id"))
	if projectID == "" {
		return nil, badRequest("missing project id")
	}

	runIDs := ParseRunIDs(ev.Query.Get("testruns"))
	header := ev.Header()

	g, ctx := errgroup.WithContext(ev.Ctx)

	var project msmodel.Project
	g.Go(func() error {
		var err error
		project, err = msapi.GetJSON[msmodel.Project](ctx, ev.Fetch, msapi.Path("projects", projectID), header)
		return err
	})

	runs := make([]TestRunData, len(runIDs))
	for i, id := range runIDs {
		g.Go(func() error {
			data, err := GetTestRunData(ctx, ev.Fetch, id, header)
			if err != nil {
				return err
			}
			runs[i] = data
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	specs, err := ev.State.Specifications(ev.Ctx, ev.Identity.User)
	if err != nil {
		clog.UsingCtx(clog.CtxPages).WithError(err).Warn("Unable to read stored specifications")
	}

	matching := []msmodel.Specification{}
	if project.ID != nil {
		matching = msmodel.SpecificationsForProject(specs, *project.ID)
	}

	return NewPage().
		Set("project", project).
		Set("runs", runs).
		Set("specifications", matching), nil
}

// ParseRunIDs splits a comma separated id list, dropping blanks, and sorts it.
func ParseRunIDs(list string) []string {
	ids := []string{}
	for _, id := range strings.Split(list, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}
