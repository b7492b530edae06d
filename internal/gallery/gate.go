package gallery

import (
	"errors"
	"slices"

	"folio/internal/catalog"
)

// ErrIncorrectSecret is the message shown for a failed unlock attempt. The
// gate reports it as OutcomeIncorrect and never returns it.
var ErrIncorrectSecret = errors.New("incorrect password")

type State int

const (
	Locked State = iota
	ChallengePending
	Unlocked
)

func (s State) String() string {
	switch s {
	case Locked:
		return "locked"
	case ChallengePending:
		return "challenge pending"
	case Unlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}

type Outcome int

const (
	// OutcomeNoChallenge means the item had no active challenge; nothing changed.
	OutcomeNoChallenge Outcome = iota
	OutcomeIncorrect
	OutcomeUnlocked
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIncorrect:
		return ErrIncorrectSecret.Error()
	case OutcomeUnlocked:
		return "unlocked"
	default:
		return "no active challenge"
	}
}

// Session holds the access state of one viewer for one page view. Unlocks
// last as long as the Session; a new Session starts with everything locked.
// A Session is not safe for concurrent use.
type Session struct {
	verifier Verifier
	unlocked map[string]bool
	// pending is meaningful only while challenging is set; an empty item
	// id is a valid challenge target.
	pending     string
	challenging bool
}

type SessionOption func(*Session)

func WithVerifier(v Verifier) SessionOption {
	return func(s *Session) {
		if v != nil {
			s.verifier = v
		}
	}
}

func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		verifier: PlaintextVerifier{},
		unlocked: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) State(it catalog.Item) State {
	switch {
	case !it.Protected, s.unlocked[it.ID]:
		return Unlocked
	case s.challenging && s.pending == it.ID:
		return ChallengePending
	default:
		return Locked
	}
}

// Select opens the challenge for a locked item. Only one challenge is active
// at a time, so a previously pending item drops back to Locked.
func (s *Session) Select(it catalog.Item) State {
	if s.State(it) == Unlocked {
		return Unlocked
	}
	s.pending = it.ID
	s.challenging = true
	return ChallengePending
}

func (s *Session) Submit(it catalog.Item, candidate string) Outcome {
	if !s.challenging || s.pending != it.ID || s.State(it) == Unlocked {
		return OutcomeNoChallenge
	}
	if !s.verifier.Verify(it.AccessSecret, candidate) {
		return OutcomeIncorrect
	}
	s.unlocked[it.ID] = true
	s.Cancel()
	return OutcomeUnlocked
}

// Cancel closes the active challenge, if any.
func (s *Session) Cancel() {
	s.pending = ""
	s.challenging = false
}

// Pending returns the id of the item whose challenge is active.
func (s *Session) Pending() (string, bool) {
	return s.pending, s.challenging
}

func (s *Session) UnlockedIDs() []string {
	ids := make([]string, 0, len(s.unlocked))
	for id := range s.unlocked {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

const (
	RedactedTitle = "••••••••"
	ProtectedTag  = "protected"
)

// ItemView is what a page may render for an item. For anything short of
// Unlocked only the id, the image reference and the lock flags are filled.
type ItemView struct {
	ID               string
	Title            string
	ShortDescription string
	DetailBody       string
	ExternalLink     string
	ImageRef         string
	Technologies     []string
	Roles            []string
	Pinned           bool
	State            State
	Locked           bool
	Obscured         bool
}

func (s *Session) View(it catalog.Item) ItemView {
	state := s.State(it)
	if state != Unlocked {
		return ItemView{
			ID:           it.ID,
			Title:        RedactedTitle,
			ImageRef:     it.ImageRef,
			Technologies: []string{ProtectedTag},
			State:        state,
			Locked:       true,
			Obscured:     true,
		}
	}
	return ItemView{
		ID:               it.ID,
		Title:            it.Title,
		ShortDescription: it.ShortDescription,
		DetailBody:       it.DetailBody,
		ExternalLink:     it.ExternalLink,
		ImageRef:         it.ImageRef,
		Technologies:     slices.Clone(it.Technologies),
		Roles:            slices.Clone(it.Roles),
		Pinned:           it.Pinned,
		State:            state,
	}
}

func (s *Session) Views(items []catalog.Item) []ItemView {
	views := make([]ItemView, len(items))
	for i, it := range items {
		views[i] = s.View(it)
	}
	return views
}
