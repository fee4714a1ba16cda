package pages

import (
	"context"
	"net/http"
	"strconv"

	"github.com/edea-dev/msweb/pkg/msapi"
	"github.com/edea-dev/msweb/pkg/msmodel"
)

type TestRunData struct {
	Run          msmodel.TestRun       `json:"run"`
	Measurements []msmodel.Measurement `json:"measurements"`
}

// GetTestRunData fetches the run identified by id and then its measurements. The
// measurements are looked up by the id in the run the backend returned, which
// differs from id when id was resolved server side. The first non 2xx response
// fails the whole call and the measurements are never fetched if the run fails.
func GetTestRunData(ctx context.Context, fetch msapi.Requester, id string, header http.Header) (TestRunData, error) {
	var data TestRunData

	run, err := msapi.GetJSON[msmodel.TestRun](ctx, fetch, msapi.Path("testruns", id), header)
	if err != nil {
		return data, err
	}

	measurements, err := msapi.GetJSON[[]msmodel.Measurement](ctx, fetch, msapi.Path("testruns", "measurements", strconv.Itoa(run.ID)), header)
	if err != nil {
		return data, err
	}

	if measurements == nil {
		measurements = []msmodel.Measurement{}
	}

	data.Run = run
	data.Measurements = measurements

	return data, nil
}
