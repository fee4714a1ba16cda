package forms

import "strconv"

// Intent says whether a submission creates a new entity or updates an existing one.
// It is fixed when the form is built so an id of 0 is still an update.
type Intent struct {
	update bool
	id     int
}

func Create() Intent {
	return Intent{}
}

func Update(id int) Intent {
	return Intent{update: true, id: id}
}

// IntentFor derives the intent from a nullable entity id.
func IntentFor(id *int) Intent {
	if id == nil {
		return Create()
	}

	return Update(*id)
}

func (i Intent) IsUpdate() bool {
	return i.update
}

// ID returns the id being updated, ok is false for a create.
func (i Intent) ID() (id int, ok bool) {
	return i.id, i.update
}

func (i Intent) String() string {
	if !i.update {
		return "create"
	}

	return "update " + strconv.Itoa(i.id)
}
