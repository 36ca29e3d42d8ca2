package picker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/daimao-tools/animename/catalog"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// Options configures a Widget.
type Options struct {
	// GroupByAnime renders collapsible groups per anime instead of a flat list.
	GroupByAnime bool
	// Language selects display names. Zero means DefaultLanguage.
	Language language.Tag
	// Field is the host field the selection is published to. Empty means DefaultField.
	Field string
	// Filter is sent with every search.
	Filter string
	// Debounce delays OnSearchInput until typing pauses. Zero searches directly.
	Debounce time.Duration
	// OnRender receives a fresh View after every change.
	OnRender func(View)
	Logger   *slog.Logger
}

// Widget is the character picker. It owns its catalog, its selection and its
// per-group collapse state; none of them are shared between widgets.
type Widget struct {
	id      string
	fetcher *catalog.Fetcher
	field   string
	filter  string
	render  func(View)
	logger  *slog.Logger

	mu        sync.Mutex
	records   []catalog.CharacterRecord
	byKey     map[string]catalog.CharacterRecord
	selection *Selection
	collapsed map[string]bool
	grouped   bool
	lang      language.Tag
	query     string
	state     State
	seq       uint64
	debounce  time.Duration
	timer     *time.Timer

	pubMu      sync.Mutex
	publishers []Publisher

	pending sync.WaitGroup
}

// New creates a widget fed by fetcher.
func New(fetcher *catalog.Fetcher, opts Options) *Widget {
	w := &Widget{
		id:        uuid.New().String(),
		fetcher:   fetcher,
		field:     opts.Field,
		filter:    opts.Filter,
		render:    opts.OnRender,
		logger:    opts.Logger,
		records:   make([]catalog.CharacterRecord, 0),
		byKey:     make(map[string]catalog.CharacterRecord),
		selection: NewSelection(),
		collapsed: make(map[string]bool),
		grouped:   opts.GroupByAnime,
		lang:      opts.Language,
		debounce:  opts.Debounce,
	}
	if w.field == "" {
		w.field = DefaultField
	}
	if w.lang == language.Und {
		w.lang = DefaultLanguage
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	w.logger = w.logger.With("widget", w.id)
	return w
}

// ID returns the widget's unique instance id.
func (w *Widget) ID() string {
	return w.id
}

// Mount attaches the widget to host. Once the host reports ready the selection
// field is hidden, any selection already stored in it is restored, and the
// initial catalog is loaded. A missing field is logged; the widget keeps working
// but cannot publish.
func (w *Widget) Mount(ctx context.Context, host Host) {
	host.OnReady(func() {
		field, ok := host.Field(w.field)
		if !ok {
			w.logger.Error("cannot publish selection", "field", w.field, "error", ErrFieldMissing)
		} else {
			field.Hide()
			w.restore(field.Value())
			w.Subscribe(&fieldPublisher{host: host, field: field})
		}

		w.pending.Add(1)
		go func() {
			defer w.pending.Done()
			w.Search(ctx, "")
		}()
	})
}

func (w *Widget) restore(value string) {
	records, err := DecodeSelection(value)
	if err != nil {
		w.logger.Warn("ignoring stored selection", "error", err)
		return
	}
	w.mu.Lock()
	for _, r := range records {
		w.selection.Add(r)
	}
	w.mu.Unlock()
}

// Subscribe adds p to the publishers notified on every selection change.
func (w *Widget) Subscribe(p Publisher) {
	w.pubMu.Lock()
	defer w.pubMu.Unlock()
	w.publishers = append(w.publishers, p)
}

// Render replaces the displayed catalog. It supersedes any search still in
// flight. Selection is kept: entries whose key is selected render checked, and
// selected keys absent from records stay selected.
func (w *Widget) Render(records []catalog.CharacterRecord, groupByAnime bool, lang language.Tag) {
	w.mu.Lock()
	w.seq++
	w.grouped = groupByAnime
	w.lang = lang
	w.applyLocked(records)
	w.mu.Unlock()
	w.notify()
}

func (w *Widget) applyLocked(records []catalog.CharacterRecord) {
	w.records = records
	w.byKey = make(map[string]catalog.CharacterRecord, len(records))
	for _, r := range records {
		w.byKey[r.Key()] = r
	}
	w.state = Idle
}

// Search fetches the catalog for text and renders it, unless a newer search or
// render was initiated while it was in flight. It reports whether the result
// was applied.
func (w *Widget) Search(ctx context.Context, text string) bool {
	w.mu.Lock()
	w.seq++
	seq := w.seq
	w.query = text
	w.state = Loading
	w.mu.Unlock()
	w.notify()

	records := w.fetcher.Fetch(ctx, text, w.filter)

	w.mu.Lock()
	if seq != w.seq {
		w.mu.Unlock()
		w.logger.Debug("discarding stale search result", "query", text)
		return false
	}
	w.applyLocked(records)
	w.mu.Unlock()
	w.notify()
	return true
}

// OnSearchInput handles a keystroke in the search box without blocking: the
// search runs in the background, after the debounce delay if one is set.
func (w *Widget) OnSearchInput(ctx context.Context, text string) {
	w.pending.Add(1)
	if w.debounce <= 0 {
		go func() {
			defer w.pending.Done()
			w.Search(ctx, text)
		}()
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil && w.timer.Stop() {
		w.pending.Done()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		defer w.pending.Done()
		w.Search(ctx, text)
	})
}

// Wait blocks until every background search has finished.
func (w *Widget) Wait() {
	w.pending.Wait()
}

// Toggle flips the selection of key and publishes. A key that is neither
// selected nor in the current catalog is ignored. It reports whether key is
// selected afterwards.
func (w *Widget) Toggle(key string) bool {
	w.mu.Lock()
	var selected bool
	switch {
	case w.selection.Has(key):
		w.selection.Remove(key)
	default:
		r, ok := w.byKey[key]
		if !ok {
			w.mu.Unlock()
			w.logger.Debug("ignoring toggle of unknown character", "key", key)
			return false
		}
		w.selection.Add(r)
		selected = true
	}
	w.mu.Unlock()

	w.publishLogged()
	w.notify()
	return selected
}

// ClearAll deselects everything, including keys not in the current catalog,
// and publishes the empty selection.
func (w *Widget) ClearAll() {
	w.mu.Lock()
	w.selection.Clear()
	w.mu.Unlock()

	w.publishLogged()
	w.notify()
}

// Publish sends the current selection to every publisher. With none attached it
// returns ErrFieldMissing.
func (w *Widget) Publish() error {
	w.pubMu.Lock()
	defer w.pubMu.Unlock()

	w.mu.Lock()
	msg := Message{WidgetID: w.id, Characters: w.selection.Records()}
	w.mu.Unlock()

	if len(w.publishers) == 0 {
		return ErrFieldMissing
	}

	var errs []error
	for _, p := range w.publishers {
		if err := p.Publish(msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (w *Widget) publishLogged() {
	if err := w.Publish(); err != nil {
		w.logger.Error("publishing selection failed", "field", w.field, "error", err)
	}
}

// ToggleGroup collapses or expands the group with the given key. It only
// affects display and reports whether the group is now collapsed.
func (w *Widget) ToggleGroup(key string) bool {
	w.mu.Lock()
	w.collapsed[key] = !w.collapsed[key]
	collapsed := w.collapsed[key]
	w.mu.Unlock()
	w.notify()
	return collapsed
}

// SetLanguage switches display names. Selection keys are unaffected.
func (w *Widget) SetLanguage(lang language.Tag) {
	w.mu.Lock()
	w.lang = lang
	w.mu.Unlock()
	w.notify()
}

// SetGroupByAnime switches between grouped and flat display.
func (w *Widget) SetGroupByAnime(grouped bool) {
	w.mu.Lock()
	w.grouped = grouped
	w.mu.Unlock()
	w.notify()
}

// Selected returns the selection in selection order.
func (w *Widget) Selected() []catalog.CharacterRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selection.Records()
}

// State returns whether the widget is waiting on a search.
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// View returns a snapshot of what the widget displays.
func (w *Widget) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.viewLocked()
}

func (w *Widget) viewLocked() View {
	tags := make([]Tag, len(w.records))
	for i, r := range w.records {
		tags[i] = newTag(r, w.lang, w.selection)
	}

	v := View{
		WidgetID: w.id,
		State:    w.state,
		Query:    w.query,
		Language: w.lang,
		Grouped:  w.grouped,
		Tags:     tags,
		Selected: w.selection.Records(),
	}
	if w.grouped {
		v.Groups = groupByAnime(w.records, tags, w.lang, w.collapsed)
	}
	return v
}

func (w *Widget) notify() {
	if w.render == nil {
		return
	}
	w.render(w.View())
}
