package pages

import (
	"github.com/edea-dev/msweb/pkg/msapi"
	"github.com/edea-dev/msweb/pkg/msmodel"
	"github.com/edea-dev/msweb/pkg/tables"
)

func Overview(ev *Event) (*Page, error) {
	return NewPage().
		Set("columns", tables.TestRunColumns()).
		Defer("testruns", deferGet[[]msmodel.TestRun](ev, "/testruns/overview")), nil
}

func TestRuns(ev *Event) (*Page, error) {
	runs, err := getJSON[[]msmodel.TestRun](ev, "/testruns")
	if err != nil {
		return nil, err
	}

	return NewPage().
		Set("testruns", runs).
		Set("columns", tables.TestRunColumns()), nil
}

func TestRun(ev *Event) (*Page, error) {
	id := ev.Param("id")
	data, err := GetTestRunData(ev.Ctx, ev.Fetch, id, ev.Header())
	if err != nil {
		return nil, err
	}

	return NewPage().
		Set("testrun", data.Run).
		Set("measurements", data.Measurements).
		Set("name", id), nil
}

func TestRunByShortCode(ev *Event) (*Page, error) {
	code := ev.Param("short_code")
	return NewPage().
		Set("name", code).
		Defer("testrun", deferGet[msmodel.TestRun](ev, msapi.Path("testruns", "short_code", code))), nil
}
