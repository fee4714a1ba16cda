package msmodel

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	HeaderWebAuthUser   = "X-WebAuth-User"
	HeaderWebAuthGroups = "X-WebAuth-Groups"
	HeaderWebAuthRoles  = "X-WebAuth-Roles"

	DefaultUser = "default"
)

// User is whatever the backend returns for /users/self.
type User map[string]any

// Identity is the caller as asserted by the fronting proxy through the X-WebAuth-* headers.
type Identity struct {
	User   string   `json:"user"`
	Groups []string `json:"groups,omitempty"`
	Roles  []string `json:"roles,omitempty"`
}

func DefaultIdentity() Identity {
	return Identity{User: DefaultUser}
}

// Header returns the headers that forward this identity to the backend.
func (i Identity) Header() http.Header {
	h := make(http.Header)
	i.ApplyTo(h)
	return h
}

// ApplyTo overwrites the X-WebAuth-* headers in h with this identity.
func (i Identity) ApplyTo(h http.Header) {
	user := i.User
	if user == "" {
		user = DefaultUser
	}

	h.Set(HeaderWebAuthUser, user)
	h.Del(HeaderWebAuthGroups)
	h.Del(HeaderWebAuthRoles)

	if len(i.Groups) != 0 {
		h.Set(HeaderWebAuthGroups, strings.Join(i.Groups, ","))
	}

	if len(i.Roles) != 0 {
		h.Set(HeaderWebAuthRoles, strings.Join(i.Roles, ","))
	}
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
