// Package catalog maps the content handles listed on towns to catalog
// building ids and decides which town hosts each catalog building.
package catalog

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"

	"github.com/Lrrr908/sewer-showdown/pkg/region"
	"github.com/Lrrr908/sewer-showdown/pkg/validation"
)

// ProjectFile is the catalog's file name inside a project directory.
const ProjectFile = "buildings.json"

// Entry is one catalog building.
type Entry struct {
	ID       string `json:"id"`
	ArtistID string `json:"artistId"`
}

// Catalog is a decoded building catalog.
type Catalog struct {
	Entries []Entry `json:"buildings"`

	byHandle map[string]string
	handles  []string // first-seen order
}

// Parse decodes catalog JSON.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	c.index()
	return &c, nil
}

// Load reads and decodes a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// New builds a catalog from entries.
func New(entries ...Entry) *Catalog {
	c := &Catalog{Entries: entries}
	c.index()
	return c
}

// index maps each handle to its building. A handle listed twice keeps its
// first position and its last building id.
func (c *Catalog) index() {
	c.byHandle = make(map[string]string)
	c.handles = nil
	for _, e := range c.Entries {
		if e.ArtistID == "" {
			continue
		}
		if _, seen := c.byHandle[e.ArtistID]; !seen {
			c.handles = append(c.handles, e.ArtistID)
		}
		c.byHandle[e.ArtistID] = e.ID
	}
}

// Len returns the number of handles with a building.
func (c *Catalog) Len() int { return len(c.handles) }

// Lookup resolves a town content handle, trying it verbatim and then with
// dots replaced by underscores.
func (c *Catalog) Lookup(handle string) (string, bool) {
	if id, ok := c.byHandle[handle]; ok && id != "" {
		return id, true
	}
	if id, ok := c.byHandle[strings.ReplaceAll(handle, ".", "_")]; ok && id != "" {
		return id, true
	}
	return "", false
}

// Assignment maps town index to the building ids the town hosts.
type Assignment map[int][]string

// Towns returns the assigned town indices in ascending order.
func (a Assignment) Towns() []int {
	out := make([]int, 0, len(a))
	for ti := range a {
		out = append(out, ti)
	}
	sort.Ints(out)
	return out
}

// Len returns the total number of assigned buildings.
func (a Assignment) Len() int {
	n := 0
	for _, ids := range a {
		n += len(ids)
	}
	return n
}

// Assign resolves every town's handles. Catalog buildings no town asked for
// are shuffled with rng and dealt round-robin to the towns that already host
// buildings, or to every town when none do. A nil catalog assigns nothing.
func (c *Catalog) Assign(towns []region.Town, rng *rand.Rand) (Assignment, *validation.Report) {
	report := validation.NewReport()
	out := make(Assignment)
	if c == nil {
		return out, report
	}

	assigned := make(map[string]bool)
	var unmatched []string
	for ti, t := range towns {
		for _, h := range t.Artists {
			id, ok := c.Lookup(h)
			if !ok {
				unmatched = append(unmatched, h)
				continue
			}
			out[ti] = append(out[ti], id)
			assigned[id] = true
		}
	}
	if len(unmatched) > 0 {
		report.AddInfo(validation.Result{
			Level:       validation.LevelPlacement,
			Message:     fmt.Sprintf("%d town handles have no catalog building", len(unmatched)),
			ActualValue: unmatched,
		})
	}

	var leftover []string
	for _, h := range c.handles {
		if id := c.byHandle[h]; id != "" && !assigned[id] {
			leftover = append(leftover, id)
		}
	}
	if len(leftover) == 0 || len(towns) == 0 {
		return out, report
	}

	rng.Shuffle(len(leftover), func(i, j int) { leftover[i], leftover[j] = leftover[j], leftover[i] })
	hosts := out.Towns()
	if len(hosts) == 0 {
		for ti := range towns {
			hosts = append(hosts, ti)
		}
	}
	for i, id := range leftover {
		ti := hosts[i%len(hosts)]
		out[ti] = append(out[ti], id)
	}
	report.AddInfo(validation.Result{
		Level:   validation.LevelPlacement,
		Message: fmt.Sprintf("%d unrequested catalog buildings distributed across %d towns", len(leftover), len(hosts)),
	})
	return out, report
}
