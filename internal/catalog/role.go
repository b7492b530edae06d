package catalog

import (
	"errors"
	"strings"
)

var (
	ErrEmptyRoleName = errors.New("role name cannot be empty")
	ErrRoleExists    = errors.New("role already exists")
	ErrRoleNotFound  = errors.New("role not found")
)

const DefaultRoleColor = "8"

// Role is display metadata for a role tag. Color is a terminal color
// (ANSI index or hex) used for facet chips only.
type Role struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color,omitempty"`
}

func NewRole(name, color string) (Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Role{}, ErrEmptyRoleName
	}
	if color == "" {
		color = DefaultRoleColor
	}
	return Role{Name: name, Color: color}, nil
}

// Palette resolves role tags to chip colors.
type Palette map[string]string

func RoleColors(roles []Role) Palette {
	p := make(Palette, len(roles))
	for _, r := range roles {
		p[r.Name] = r.Color
	}
	return p
}

func (p Palette) Color(role string) string {
	if c, ok := p[role]; ok && c != "" {
		return c
	}
	return DefaultRoleColor
}
