package themes

import (
	"errors"
	"fmt"

	"github.com/opencode-ai/namuplot/style"
)

var (
	// ErrUnknownRole is returned for a color role outside the fixed set.
	ErrUnknownRole = errors.New("unknown color role")
	// ErrMissingRole is returned when a theme does not define every role.
	ErrMissingRole = errors.New("missing color role")
)

// Role is a semantic color slot shared by every theme.
type Role string

const (
	RoleText       Role = "text"
	RoleBackground Role = "background"
	RoleGray       Role = "gray"
	RoleMajor      Role = "major"
	RoleMinor      Role = "minor"
	RoleA          Role = "a"
	RoleB          Role = "b"
	RoleC          Role = "c"
	RoleD          Role = "d"
	RoleE          Role = "e"
)

// Roles returns every color role in display order.
func Roles() []Role {
	return []Role{
		RoleText,
		RoleBackground,
		RoleGray,
		RoleMajor,
		RoleMinor,
		RoleA,
		RoleB,
		RoleC,
		RoleD,
		RoleE,
	}
}

// Colors maps every role to a hex color. It is a plain value; copies
// never share state.
type Colors struct {
	Text       string
	Background string
	Gray       string
	Major      string
	Minor      string
	A          string
	B          string
	C          string
	D          string
	E          string
}

func (c *Colors) slot(r Role) *string {
	switch r {
	case RoleText:
		return &c.Text
	case RoleBackground:
		return &c.Background
	case RoleGray:
		return &c.Gray
	case RoleMajor:
		return &c.Major
	case RoleMinor:
		return &c.Minor
	case RoleA:
		return &c.A
	case RoleB:
		return &c.B
	case RoleC:
		return &c.C
	case RoleD:
		return &c.D
	case RoleE:
		return &c.E
	}
	return nil
}

// Get returns the color for a role.
func (c Colors) Get(r Role) (string, error) {
	slot := c.slot(r)
	if slot == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, r)
	}
	return *slot, nil
}

// Map returns a new role-to-color map.
func (c Colors) Map() map[Role]string {
	out := make(map[Role]string, len(Roles()))
	for _, r := range Roles() {
		out[r] = *c.slot(r)
	}
	return out
}

// Cycle returns the series colors a through e.
func (c Colors) Cycle() []string {
	return []string{c.A, c.B, c.C, c.D, c.E}
}

// Validate checks that every role is set to a hex color.
func (c Colors) Validate() error {
	for _, r := range Roles() {
		value := *c.slot(r)
		if value == "" {
			return fmt.Errorf("%w: %q", ErrMissingRole, r)
		}
		if !style.ValidColor(value) {
			return fmt.Errorf("role %q: %w: %q is not a hex color", r, style.ErrInvalidValue, value)
		}
	}
	return nil
}

func colorsFromMap(in map[string]string) (Colors, error) {
	var c Colors
	for key, value := range in {
		slot := c.slot(Role(key))
		if slot == nil {
			return Colors{}, fmt.Errorf("%w: %q", ErrUnknownRole, key)
		}
		*slot = value
	}
	if err := c.Validate(); err != nil {
		return Colors{}, err
	}
	return c, nil
}
