package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle    = errors.New("item title cannot be empty")
	ErrMissingSecret = errors.New("protected item requires an access secret")
	ErrInvalidLink   = errors.New("external link must be an absolute http(s) URL")
)

// Item is one showcased project. Technologies and Roles behave as sets:
// duplicates carry no meaning, but the stored order is kept for display.
type Item struct {
	ID               string    `yaml:"id"`
	Title            string    `yaml:"title"`
	ShortDescription string    `yaml:"short_description,omitempty"`
	DetailBody       string    `yaml:"detail_body,omitempty"`
	ExternalLink     string    `yaml:"external_link,omitempty"`
	ImageRef         string    `yaml:"image_ref,omitempty"`
	Technologies     []string  `yaml:"technologies,omitempty"`
	Roles            []string  `yaml:"roles,omitempty"`
	DisplayOrder     int       `yaml:"display_order"`
	Published        bool      `yaml:"published"`
	Pinned           bool      `yaml:"pinned"`
	Protected        bool      `yaml:"protected"`
	AccessSecret     string    `yaml:"access_secret,omitempty"`
	CreatedAt        time.Time `yaml:"created_at"`
	UpdatedAt        time.Time `yaml:"updated_at"`
}

func NewItem(title string) Item {
	now := time.Now()
	return Item{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (it Item) WithTechnologies(technologies ...string) Item {
	newIt := it
	newIt.Technologies = slices.Clone(technologies)
	return newIt
}

func (it Item) WithRoles(roles ...string) Item {
	newIt := it
	newIt.Roles = slices.Clone(roles)
	return newIt
}

func (it Item) WithDescription(short, detail string) Item {
	newIt := it
	newIt.ShortDescription = short
	newIt.DetailBody = detail
	return newIt
}

func (it Item) WithPinned(pinned bool) Item {
	newIt := it
	newIt.Pinned = pinned
	return newIt
}

func (it Item) WithPublished(published bool) Item {
	newIt := it
	newIt.Published = published
	return newIt
}

func (it Item) WithOrder(order int) Item {
	newIt := it
	newIt.DisplayOrder = order
	return newIt
}

func (it Item) WithImage(ref string) Item {
	newIt := it
	newIt.ImageRef = ref
	return newIt
}

func (it Item) WithLink(link string) Item {
	newIt := it
	newIt.ExternalLink = link
	return newIt
}

// WithSecret protects the item. An empty secret removes the protection.
func (it Item) WithSecret(secret string) Item {
	newIt := it
	newIt.Protected = secret != ""
	newIt.AccessSecret = secret
	return newIt
}

func (it Item) HasTechnology(tech string) bool {
	return slices.Contains(it.Technologies, tech)
}

func (it Item) HasRole(role string) bool {
	return slices.Contains(it.Roles, role)
}

func (it *Item) AddTechnology(tech string) {
	if tech == "" || it.HasTechnology(tech) {
		return
	}
	it.Technologies = append(it.Technologies, tech)
}

func (it *Item) RemoveTechnology(tech string) {
	it.Technologies = slices.DeleteFunc(it.Technologies, func(t string) bool { return t == tech })
}

func (it *Item) AddRole(role string) {
	if role == "" || it.HasRole(role) {
		return
	}
	it.Roles = append(it.Roles, role)
}

func (it *Item) RemoveRole(role string) {
	it.Roles = slices.DeleteFunc(it.Roles, func(r string) bool { return r == role })
}

func (it *Item) Touch() {
	it.UpdatedAt = time.Now()
}

func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

func ValidateLink(link string) error {
	if link == "" {
		return nil
	}
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: got %q", ErrInvalidLink, link)
	}
	return nil
}

// ValidateAndNormalize is applied on admin writes. Items read back from a
// catalog file skip it, so a protected item without a secret can still
// reach the gallery; it then stays locked.
func (it *Item) ValidateAndNormalize() error {
	it.Title = strings.TrimSpace(it.Title)
	if err := ValidateTitle(it.Title); err != nil {
		return err
	}

	if err := ValidateLink(it.ExternalLink); err != nil {
		return err
	}

	if it.Protected && it.AccessSecret == "" {
		return fmt.Errorf("%w: %q", ErrMissingSecret, it.Title)
	}
	if !it.Protected {
		it.AccessSecret = ""
	}

	it.Technologies = dedupe(it.Technologies)
	it.Roles = dedupe(it.Roles)
	return nil
}

func dedupe(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// PublishedOnly keeps published items in their original order.
func PublishedOnly(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Published {
			out = append(out, it)
		}
	}
	return out
}
