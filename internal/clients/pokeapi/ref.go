package pokeapi

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ResourceRef is an upstream {name, url} pair with the kind and numeric id
// already parsed out of the url. Parsing happens once, while decoding.
type ResourceRef struct {
	Kind string
	ID   int
	Name string
}

// Resolvable reports whether the ref carries enough to be fetched
func (r ResourceRef) Resolvable() bool {
	return r.Kind != "" && r.ID > 0
}

// Path is the ref's location relative to the API base url
func (r ResourceRef) Path() string {
	return fmt.Sprintf("%s/%d/", r.Kind, r.ID)
}

// UnmarshalJSON decodes {"name": ..., "url": ...}
func (r *ResourceRef) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Name = raw.Name
	r.Kind, r.ID = parseResourceURL(raw.URL)
	return nil
}

// parseResourceURL extracts kind and id from ".../api/v2/<kind>/<id>/".
// Anything else yields an empty kind and a zero id.
func parseResourceURL(raw string) (string, int) {
	if raw == "" {
		return "", 0
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", 0
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 {
		return "", 0
	}

	id, err := strconv.Atoi(segments[len(segments)-1])
	if err != nil || id <= 0 {
		return "", 0
	}
	return segments[len(segments)-2], id
}
