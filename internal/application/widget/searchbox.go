package widget

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"
	"unicode/utf8"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

var ErrNoSuchResult = errors.New("no such search result")

type SearchState string

const (
	SearchIdle           SearchState = "idle"
	SearchSearching      SearchState = "searching"
	SearchShowingResults SearchState = "showingResults"
	SearchShowingEmpty   SearchState = "showingEmpty"
)

// Region is the part of the search box a pointer event landed on
type Region string

const (
	RegionInput    Region = "input"
	RegionDropdown Region = "dropdown"
	RegionOutside  Region = "outside"
)

func ParseRegion(value string) (Region, bool) {
	switch Region(value) {
	case RegionInput, RegionDropdown, RegionOutside:
		return Region(value), true
	}
	return "", false
}

type Point struct {
	X float64
	Y float64
}

type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Layout places the input and the dropdown in page coordinates
type Layout struct {
	Input    Rect
	Dropdown Rect
}

func DefaultLayout() Layout {
	return Layout{
		Input:    Rect{X: 0, Y: 0, Width: 480, Height: 40},
		Dropdown: Rect{X: 0, Y: 44, Width: 480, Height: 240},
	}
}

// Timer is the cancellable handle of a scheduled debounce
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d
type AfterFunc func(d time.Duration, f func()) Timer

func timeAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// CitySearcher is the directory lookup used by the search box
type CitySearcher interface {
	SearchCities(ctx context.Context, query string) ([]entity.City, error)
}

type SearchBoxOptions struct {
	Debounce       time.Duration
	MinQueryLength int
	Layout         Layout
	// AfterFunc replaces time.AfterFunc, mostly for tests
	AfterFunc AfterFunc
}

func DefaultSearchBoxOptions() SearchBoxOptions {
	return SearchBoxOptions{
		Debounce:       300 * time.Millisecond,
		MinQueryLength: 2,
		Layout:         DefaultLayout(),
	}
}

// SearchView is an immutable copy of the search box state
type SearchView struct {
	Query   string        `json:"query"`
	State   SearchState   `json:"state"`
	Open    bool          `json:"open"`
	Loading bool          `json:"loading"`
	Results []entity.City `json:"results"`
}

// SearchBox is the debounced city autocomplete. Every transition happens under mu; the directory
// call runs outside it and its result is dropped when a newer query has started meanwhile.
type SearchBox struct {
	searcher     CitySearcher
	onCityChosen func(ctx context.Context, city entity.City)
	options      SearchBoxOptions

	mu         sync.Mutex
	query      string
	results    []entity.City
	open       bool
	loading    bool
	timer      Timer
	generation uint64
}

func NewSearchBox(searcher CitySearcher, onCityChosen func(ctx context.Context, city entity.City), options SearchBoxOptions) *SearchBox {
	if options.AfterFunc == nil {
		options.AfterFunc = timeAfterFunc
	}
	if options.MinQueryLength <= 0 {
		options.MinQueryLength = 1
	}
	if onCityChosen == nil {
		onCityChosen = func(context.Context, entity.City) {}
	}

	return &SearchBox{
		searcher:     searcher,
		onCityChosen: onCityChosen,
		options:      options,
	}
}

// Input replaces the query and restarts the debounce; short queries close the dropdown right away
func (sb *SearchBox) Input(query string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	sb.query = query
	sb.generation++
	sb.stopTimerLocked()

	if !sb.searchableLocked() {
		sb.results = nil
		sb.open = false
		sb.loading = false
		return
	}

	generation := sb.generation
	sb.timer = sb.options.AfterFunc(sb.options.Debounce, func() {
		sb.search(generation, query)
	})
}

func (sb *SearchBox) search(generation uint64, query string) {
	sb.mu.Lock()
	if generation != sb.generation {
		sb.mu.Unlock()
		return
	}
	sb.timer = nil
	sb.loading = true
	sb.open = true
	sb.mu.Unlock()

	cities, err := sb.searcher.SearchCities(context.Background(), query)

	sb.mu.Lock()
	defer sb.mu.Unlock()

	if generation != sb.generation {
		return
	}

	sb.loading = false
	if err != nil {
		log.Error(msg.GetMessage("search.failed", query, err))
		sb.results = nil
		sb.open = false
		return
	}

	sb.results = cities
	sb.open = true
}

// Focus reopens the dropdown with whatever it showed last, without searching again
func (sb *SearchBox) Focus() {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.searchableLocked() {
		sb.open = true
	}
}

// PointerDown closes the dropdown when the pointer lands outside both the input and the dropdown
func (sb *SearchBox) PointerDown(region Region) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if region == RegionOutside {
		sb.open = false
	}
}

// HitTest maps a point to a region; a closed dropdown takes no space
func (sb *SearchBox) HitTest(p Point) Region {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	switch {
	case sb.options.Layout.Input.Contains(p):
		return RegionInput
	case sb.open && sb.options.Layout.Dropdown.Contains(p):
		return RegionDropdown
	default:
		return RegionOutside
	}
}

// Select chooses the result at index, clears the box and hands the city to the chosen callback
func (sb *SearchBox) Select(ctx context.Context, index int) (entity.City, error) {
	sb.mu.Lock()
	if !sb.open || sb.loading || index < 0 || index >= len(sb.results) {
		sb.mu.Unlock()
		return entity.City{}, ErrNoSuchResult
	}

	city := sb.results[index]
	sb.query = ""
	sb.results = nil
	sb.open = false
	sb.generation++
	sb.stopTimerLocked()
	sb.mu.Unlock()

	sb.onCityChosen(ctx, city)
	return city, nil
}

func (sb *SearchBox) View() SearchView {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	view := SearchView{
		Query:   sb.query,
		Open:    sb.open,
		Loading: sb.loading,
		Results: slices.Clone(sb.results),
	}
	if view.Results == nil {
		view.Results = []entity.City{}
	}

	// a pending debounce counts as searching even though the dropdown stays as it was
	switch {
	case sb.timer != nil || sb.loading:
		view.State = SearchSearching
	case !sb.open:
		view.State = SearchIdle
	case len(sb.results) > 0:
		view.State = SearchShowingResults
	default:
		view.State = SearchShowingEmpty
	}
	return view
}

// Stop cancels a pending debounce
func (sb *SearchBox) Stop() {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	sb.generation++
	sb.stopTimerLocked()
}

func (sb *SearchBox) searchableLocked() bool {
	return utf8.RuneCountInString(sb.query) >= sb.options.MinQueryLength
}

func (sb *SearchBox) stopTimerLocked() {
	if sb.timer != nil {
		sb.timer.Stop()
		sb.timer = nil
	}
}
