package webapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/apex/log"
	"github.com/edea-dev/msweb/pkg/clog"
	"github.com/edea-dev/msweb/pkg/forms"
	"github.com/edea-dev/msweb/pkg/lock"
	"github.com/edea-dev/msweb/pkg/msapi"
	"github.com/edea-dev/msweb/pkg/pages"
	"github.com/edea-dev/msweb/pkg/schema"
	"github.com/edea-dev/msweb/pkg/state"
	"github.com/gosimple/slug"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FormController handles the create/edit form posts. Writes touching the same
// project are serialized.
type FormController struct {
	fetch        msapi.Requester
	store        state.Store
	projectLocks *lock.IdLocker[int]
	nameLocks    *lock.IdLocker[string]
}

func NewFormController(fetch msapi.Requester, store state.Store) *FormController {
	return &FormController{
		fetch:        fetch,
		store:        store,
		projectLocks: lock.NewIdLocker[int](),
		nameLocks:    lock.NewIdLocker[string](),
	}
}

// SubmitSpecification creates or updates a specification of the project at :slug.
func (fc *FormController) SubmitSpecification(c echo.Context) error {
	in, err := readInput(c)
	if err != nil {
		return err
	}

	ev := newEvent(c.Request().Context(), c, fc.fetch, fc.store)
	if isBlank(in["project_id"]) {
		project, err := pages.ResolveProject(ev, c.Param("slug"))
		if err != nil {
			return toHTTPError(err)
		}

		if project.ID != nil {
			in["project_id"] = *project.ID
		}
	}

	form := forms.SpecificationForm(in)
	if !form.Valid {
		return c.JSON(http.StatusBadRequest, echo.Map{"form": form})
	}

	var body any
	err = fc.projectLocks.WithLock(form.Data.ProjectID, func() error {
		var err error
		body, err = forms.SubmitForm(ev.Ctx, fc.fetch, "specifications", form, ev.Header(), nil)
		return err
	})

	return respondSubmit(c, form, body, err)
}

// SubmitProject creates or updates a project. A blank short code is derived from
// the name.
func (fc *FormController) SubmitProject(c echo.Context) error {
	in, err := readInput(c)
	if err != nil {
		return err
	}

	if name, ok := in["name"].(string); ok && isBlank(in["short_code"]) && strings.TrimSpace(name) != "" {
		in["short_code"] = slug.Make(name)
	}

	form := forms.ProjectForm(in)
	if !form.Valid {
		return c.JSON(http.StatusBadRequest, echo.Map{"form": form})
	}

	ev := newEvent(c.Request().Context(), c, fc.fetch, fc.store)
	key := form.Data.Name
	if form.Data.ShortCode != nil {
		key = *form.Data.ShortCode
	}

	var body any
	err = fc.nameLocks.WithLock(key, func() error {
		var err error
		body, err = forms.SubmitForm(ev.Ctx, fc.fetch, "projects", form, ev.Header(), nil)
		return err
	})

	return respondSubmit(c, form, body, err)
}

func respondSubmit[T forms.Identified](c echo.Context, form *forms.Form[T], body any, err error) error {
	var submitErr *forms.SubmitError

	switch {
	case errors.As(err, &submitErr):
		clog.UsingCtx(clog.CtxForms).WithFields(log.Fields{
			"form":   form.ID,
			"status": submitErr.StatusCode,
		}).WithError(err).Warn("Backend refused form")
		return c.JSON(submitErr.StatusCode, echo.Map{"form": form, "error": submitErr.Detail()})
	case err != nil:
		return toHTTPError(err)
	case !form.Valid:
		return c.JSON(http.StatusBadRequest, echo.Map{"form": form})
	default:
		form.SetMessage(body)
		return c.JSON(http.StatusOK, echo.Map{"form": form})
	}
}

// readInput accepts a JSON object or url encoded/multipart form data.
func readInput(c echo.Context) (schema.Input, error) {
	req := c.Request()
	if strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		var in schema.Input
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, errors.Wrap(err, "invalid json body").Error())
		}

		if in == nil {
			in = schema.Input{}
		}

		return in, nil
	}

	values, err := c.FormParams()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.Wrap(err, "invalid form body").Error())
	}

	return schema.FromValues(values), nil
}

func isBlank(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	default:
		return false
	}
}
