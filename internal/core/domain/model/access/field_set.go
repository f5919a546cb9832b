package access

import (
	"sort"
	"strings"
)

// Wildcard marks an unrestricted FieldSet.
const Wildcard = "*"

// FieldSet is a per-user allow-list of order field names, applied as a
// projection step after scope filtering. The wildcard entry "*" means
// unrestricted. An empty set allows nothing.
type FieldSet struct {
	unrestricted bool
	names        map[string]struct{}
}

// NewFieldSet parses a comma-separated allow-list as stored on the user
// record. Names are trimmed and matched case-insensitively; empty entries
// are dropped.
func NewFieldSet(commaList string) FieldSet {
	fs := FieldSet{names: map[string]struct{}{}}
	for _, raw := range strings.Split(commaList, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if name == Wildcard {
			fs.unrestricted = true
			continue
		}
		fs.names[strings.ToLower(name)] = struct{}{}
	}
	return fs
}

// UnrestrictedFieldSet returns a FieldSet allowing every field.
func UnrestrictedFieldSet() FieldSet {
	return FieldSet{unrestricted: true, names: map[string]struct{}{}}
}

// IsUnrestricted reports whether the set carries the wildcard.
func (fs FieldSet) IsUnrestricted() bool {
	return fs.unrestricted
}

// Allows reports whether the named field may be shown to the actor.
func (fs FieldSet) Allows(name string) bool {
	if fs.unrestricted {
		return true
	}
	_, ok := fs.names[strings.ToLower(name)]
	return ok
}

// Names returns the allowed field names in sorted order; nil when
// unrestricted.
func (fs FieldSet) Names() []string {
	if fs.unrestricted {
		return nil
	}
	names := make([]string, 0, len(fs.names))
	for name := range fs.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String renders the set back into the stored comma-list form.
func (fs FieldSet) String() string {
	if fs.unrestricted {
		return Wildcard
	}
	return strings.Join(fs.Names(), ",")
}
