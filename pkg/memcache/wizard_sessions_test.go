package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcstudio/internal/wizard"
)

func TestWizardSessions_PutAndGet(t *testing.T) {
	store := NewWizardSessions()
	session := wizard.NewSession("sess-1", wizard.New(wizard.Seed{}))

	store.Put(session, time.Minute)

	got, ok := store.Get("sess-1")
	require.True(t, ok)
	assert.Same(t, session, got)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestWizardSessions_Expiry(t *testing.T) {
	store := NewWizardSessions()
	session := wizard.NewSession("sess-2", wizard.New(wizard.Seed{}))

	store.Put(session, -time.Second)

	_, ok := store.Get("sess-2")
	assert.False(t, ok)

	// The expired entry is removed, not just hidden.
	_, ok = store.Get("sess-2")
	assert.False(t, ok)
}

func TestWizardSessions_Delete(t *testing.T) {
	store := NewWizardSessions()
	session := wizard.NewSession("sess-3", wizard.New(wizard.Seed{}))

	store.Put(session, time.Minute)
	store.Delete("sess-3")

	_, ok := store.Get("sess-3")
	assert.False(t, ok)
}

func TestWizardSessions_PutOverwrites(t *testing.T) {
	store := NewWizardSessions()
	first := wizard.NewSession("sess-4", wizard.New(wizard.Seed{}))
	second := wizard.NewSession("sess-4", wizard.New(wizard.Seed{Location: "Japan"}))

	store.Put(first, time.Minute)
	store.Put(second, time.Minute)

	got, ok := store.Get("sess-4")
	require.True(t, ok)
	assert.Same(t, second, got)
}
