// Package explorer implements the projects-explorer state: a working
// collection of repositories plus the user-controlled filter, sort and pin
// settings, reduced to a rendered card list through one fixed pipeline.
package explorer

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Rajan167030/portfolio/internal/models"
	"github.com/Rajan167030/portfolio/internal/service"
)

// EmptyMessage is what the UI shows when the pipeline filters everything out.
const EmptyMessage = "No repositories match your filters."

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortUpdated SortKey = "updated"
	SortStars   SortKey = "stars"
	SortName    SortKey = "name"
)

// FilterState holds the user-controlled knobs. It is transient: created with
// defaults when an explorer is built and discarded with it.
type FilterState struct {
	Query        string
	Language     string // exact, case-insensitive; "all" disables
	HideForks    bool
	HideArchived bool
	Sort         SortKey
}

// DefaultFilterState mirrors the explorer's initial UI state.
func DefaultFilterState() FilterState {
	return FilterState{
		Language:     "all",
		HideForks:    true,
		HideArchived: true,
		Sort:         SortUpdated,
	}
}

// Source re-fetches the working collection on refresh.
type Source interface {
	List(ctx context.Context, opts service.ListOptions) ([]models.Repository, error)
}

// ImageResolver finds a README preview image for a card.
type ImageResolver interface {
	ResolveImage(ctx context.Context, owner, repo string) (string, bool)
}

// Explorer owns one working collection and one FilterState. Records are
// never mutated in place: the pipeline only filters and reorders copies, and
// a refresh wholesale-replaces the collection.
type Explorer struct {
	mu     sync.Mutex
	source Source
	images ImageResolver

	username string
	pinned   []string
	filter   FilterState
	repos    []models.Repository
}

// New seeds an explorer with an initial collection (typically fetched at
// page-load time) and an optional ordered list of repository names to pin.
func New(source Source, images ImageResolver, username string, pinned []string, initial []models.Repository) *Explorer {
	return &Explorer{
		source:   source,
		images:   images,
		username: username,
		pinned:   pinned,
		filter:   DefaultFilterState(),
		repos:    initial,
	}
}

// ---- filter state mutations ------------------------------------------------

func (e *Explorer) SetQuery(q string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filter.Query = q
}

func (e *Explorer) SetLanguage(lang string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filter.Language = lang
}

func (e *Explorer) SetSort(key SortKey) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filter.Sort = key
}

func (e *Explorer) SetHideForks(hide bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filter.HideForks = hide
}

func (e *Explorer) SetHideArchived(hide bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filter.HideArchived = hide
}

// SetFilter replaces the whole filter state at once.
func (e *Explorer) SetFilter(f FilterState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filter = f
}

// Filter returns the current filter state.
func (e *Explorer) Filter() FilterState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filter
}

// ---- views -----------------------------------------------------------------

// View runs the pipeline over the working collection.
func (e *Explorer) View() []models.Repository {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Apply(e.repos, e.filter, e.pinned)
}

// Languages derives the selector options: the distinct, sorted set of
// languages present in the working collection (not the filtered view).
func (e *Explorer) Languages() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	seen := make(map[string]struct{})
	langs := make([]string, 0)
	for _, r := range e.repos {
		if r.Language == "" {
			continue
		}
		if _, ok := seen[r.Language]; ok {
			continue
		}
		seen[r.Language] = struct{}{}
		langs = append(langs, r.Language)
	}

	c := collate.New(language.Und, collate.Loose)
	c.SortStrings(langs)
	return langs
}

// Refresh re-invokes the source with the current hide toggles as server-side
// exclusion hints and wholesale-replaces the working collection. On failure
// the previous collection stays in place; the error is logged, not surfaced.
func (e *Explorer) Refresh(ctx context.Context) {
	e.mu.Lock()
	opts := service.ListOptions{
		Username:        e.username,
		ExcludeForks:    e.filter.HideForks,
		ExcludeArchived: e.filter.HideArchived,
	}
	e.mu.Unlock()

	repos, err := e.source.List(ctx, opts)
	if err != nil {
		log.Error().Err(err).Str("username", e.username).Msg("refresh failed; keeping previous collection")
		return
	}

	e.mu.Lock()
	e.repos = repos
	e.mu.Unlock()
}

// ---- pipeline --------------------------------------------------------------

// Apply reduces a collection through the fixed pipeline: hide-forks,
// hide-archived, language, search, sort, pin. The input slice is not
// modified. Apply is idempotent: feeding its output back in with the same
// state yields the same sequence.
func Apply(repos []models.Repository, f FilterState, pinned []string) []models.Repository {
	list := make([]models.Repository, 0, len(repos))

	query := strings.ToLower(strings.TrimSpace(f.Query))
	lang := strings.ToLower(f.Language)

	for _, r := range repos {
		if f.HideForks && r.Fork {
			continue
		}
		if f.HideArchived && r.Archived {
			continue
		}
		if lang != "" && lang != "all" && strings.ToLower(r.Language) != lang {
			continue
		}
		if query != "" && !matchesQuery(r, query) {
			continue
		}
		list = append(list, r)
	}

	sortRepos(list, f.Sort)

	if len(pinned) == 0 {
		return list
	}
	return pinFirst(list, pinned)
}

func matchesQuery(r models.Repository, query string) bool {
	if strings.Contains(strings.ToLower(r.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), query) {
		return true
	}
	return strings.Contains(strings.ToLower(strings.Join(r.Topics, " ")), query)
}

func sortRepos(list []models.Repository, key SortKey) {
	switch key {
	case SortName:
		c := collate.New(language.Und, collate.Loose)
		sort.SliceStable(list, func(i, j int) bool {
			return c.CompareString(list[i].Name, list[j].Name) < 0
		})
	case SortStars:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].StargazersCount > list[j].StargazersCount
		})
	default: // SortUpdated
		sort.SliceStable(list, func(i, j int) bool {
			return updatedTime(list[i]).After(updatedTime(list[j]))
		})
	}
}

// updatedTime picks the best-available timestamp: updated_at, then
// pushed_at, then created_at. A record with none sorts as epoch zero.
func updatedTime(r models.Repository) time.Time {
	for _, raw := range []string{r.UpdatedAt, r.PushedAt, r.CreatedAt} {
		if raw == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// pinFirst stably partitions the sorted list: repositories whose name is in
// the pinned set come first, both groups keeping their post-sort order.
func pinFirst(list []models.Repository, pinned []string) []models.Repository {
	pinSet := make(map[string]struct{}, len(pinned))
	for _, name := range pinned {
		pinSet[strings.ToLower(name)] = struct{}{}
	}

	pins := make([]models.Repository, 0, len(pinned))
	rest := make([]models.Repository, 0, len(list))
	for _, r := range list {
		if _, ok := pinSet[strings.ToLower(r.Name)]; ok {
			pins = append(pins, r)
		} else {
			rest = append(rest, r)
		}
	}
	return append(pins, rest...)
}
