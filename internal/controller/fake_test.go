package controller_test

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/ruminaider/profilectl/internal/opener"
	"github.com/ruminaider/profilectl/internal/profiles"
)

var errBackendDown = errors.New("backend down")

type call struct {
	Op      string
	Name    string
	Profile profiles.Profile
}

// fakeBackend is an in-memory profile store for one user.
type fakeBackend struct {
	mu       sync.Mutex
	profiles []profiles.Profile
	defaults profiles.Defaults
	gen      profiles.Generated
	calls    []call

	// failOps makes the named operations return errBackendDown.
	failOps map[string]bool
	// listHook, when set, replaces ListProfiles.
	listHook func(ctx context.Context, n int) ([]profiles.Profile, error)
	lists    int
}

func newFakeBackend(list ...profiles.Profile) *fakeBackend {
	return &fakeBackend{profiles: list, failOps: map[string]bool{}}
}

func (f *fakeBackend) record(c call) error {
	f.calls = append(f.calls, c)
	if f.failOps[c.Op] {
		return errBackendDown
	}
	return nil
}

func (f *fakeBackend) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

func (f *fakeBackend) ops() []string {
	var out []string
	for _, c := range f.Calls() {
		out = append(out, c.Op)
	}
	return out
}

func (f *fakeBackend) ListProfiles(ctx context.Context) ([]profiles.Profile, error) {
	f.mu.Lock()
	f.lists++
	n := f.lists
	hook := f.listHook
	err := f.record(call{Op: "list"})
	list := slices.Clone(f.profiles)
	f.mu.Unlock()

	if hook != nil {
		return hook(ctx, n)
	}
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (f *fakeBackend) CreateProfile(_ context.Context, p profiles.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(call{Op: "create", Profile: p}); err != nil {
		return err
	}
	f.profiles = append(f.profiles, p)
	return nil
}

func (f *fakeBackend) UpdateProfile(_ context.Context, oldName string, p profiles.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(call{Op: "update", Name: oldName, Profile: p}); err != nil {
		return err
	}
	for i := range f.profiles {
		if f.profiles[i].Name == oldName {
			f.profiles[i] = p
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeBackend) DeleteProfile(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(call{Op: "delete", Name: name}); err != nil {
		return err
	}
	f.profiles = slices.DeleteFunc(f.profiles, func(p profiles.Profile) bool { return p.Name == name })
	return nil
}

func (f *fakeBackend) GenerateProfile(_ context.Context, profession string) (profiles.Generated, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(call{Op: "generate", Name: profession}); err != nil {
		return profiles.Generated{}, err
	}
	return f.gen, nil
}

func (f *fakeBackend) Defaults(context.Context) (profiles.Defaults, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(call{Op: "defaults"}); err != nil {
		return profiles.Defaults{}, err
	}
	return f.defaults, nil
}

// recordingNotifier keeps every message it is asked to send.
type recordingNotifier struct {
	mu   sync.Mutex
	msgs []opener.Message
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, msg opener.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
	return n.err
}

func (n *recordingNotifier) Messages() []opener.Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.msgs)
}
