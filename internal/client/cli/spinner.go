package cli

import (
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/dmitrijs2005/securevault/internal/client/store"
)

// loadingIndicator shows a spinner while the record store is loading.
// The spinner only draws on a terminal.
type loadingIndicator struct {
	mu      sync.Mutex
	s       *spinner.Spinner
	loading bool
	unsub   func()
}

func newLoadingIndicator(w io.Writer) *loadingIndicator {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " Loading..."
	_ = s.Color("cyan")
	return &loadingIndicator{s: s}
}

// attach follows st until detach is called.
func (l *loadingIndicator) attach(st *store.Store) {
	unsub := st.Subscribe(func(state store.State) {
		l.set(state.Loading)
	})
	l.mu.Lock()
	l.unsub = unsub
	l.mu.Unlock()
}

func (l *loadingIndicator) set(loading bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.loading == loading {
		return
	}
	l.loading = loading
	if loading {
		l.s.Start()
	} else {
		l.s.Stop()
	}
}

// run shows the spinner with msg while fn runs.
func (l *loadingIndicator) run(msg string, fn func() error) error {
	l.mu.Lock()
	suffix := l.s.Suffix
	l.s.Suffix = " " + msg
	l.mu.Unlock()

	l.set(true)
	err := fn()
	l.set(false)

	l.mu.Lock()
	l.s.Suffix = suffix
	l.mu.Unlock()
	return err
}

func (l *loadingIndicator) detach() {
	l.mu.Lock()
	unsub := l.unsub
	l.unsub = nil
	l.mu.Unlock()
	if unsub != nil {
		unsub()
	}
	l.set(false)
}

func (l *loadingIndicator) active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}
