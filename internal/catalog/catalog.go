package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
)

// departmentCodes maps a department display name to the enrollment code
// downstream inventory systems expect instead of the display name.
var departmentCodes = map[string]string{
	"Biological Sciences":           "NCSU-COS-BIO",
	"Chemistry":                     "NCSU-COS-CHEM",
	"Marine, Earth and Atmospheric": "NCSU-COS-MEAS",
	"Mathematics":                   "NCSU-COS-MATH",
	"Physics":                       "NCSU-COS-PHYS",
	"Statistics":                    "NCSU-COS-STAT",
	"Other":                         "NCSU-COS-OTHER",
}

// departmentBuildings restricts a department's selectable buildings. An
// absent or empty entry means the full building catalog applies.
var departmentBuildings = map[string][]string{
	"Mathematics": {"SAS Hall", "Cox Hall", "Dabney Hall", "Language and Computer Laboratories"},
	"Statistics":  {"SAS Hall"},
	"Chemistry":   {"Dabney Hall", "Fox Laboratories"},
	"Physics":     {"Riddick Hall", "Cox Hall"},
	"Other":       {},
}

// Catalog holds the read-only selection data for one kiosk run: the full
// building list plus the fixed department tables. Built once at startup.
type Catalog struct {
	buildings   []string
	departments []string
}

// New builds a Catalog over the given building names. Names are deduplicated
// and sorted; blank names are dropped. Department order is fixed at
// construction so the selector iterates deterministically.
func New(buildings []string) *Catalog {
	seen := make(map[string]bool, len(buildings))
	out := make([]string, 0, len(buildings))
	for _, b := range buildings {
		if b == "" || seen[b] {
			continue
		}
		seen[b] = true
		out = append(out, b)
	}
	sort.Strings(out)

	depts := make([]string, 0, len(departmentCodes))
	for name := range departmentCodes {
		depts = append(depts, name)
	}
	sort.Strings(depts)
	// "Other" sorts mid-list; kiosks expect it last.
	for i, d := range depts {
		if d == "Other" {
			depts = append(append(depts[:i], depts[i+1:]...), "Other")
			break
		}
	}

	return &Catalog{buildings: out, departments: depts}
}

// Load reads the building list resource at path and builds a Catalog.
// A missing or unreadable resource is fatal to startup, so the error is
// returned rather than defaulted around.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open building list: %w", err)
	}
	defer f.Close()

	buildings, err := parseBuildings(f)
	if err != nil {
		return nil, fmt.Errorf("read building list %s: %w", path, err)
	}
	return New(buildings), nil
}

// parseBuildings reads one building name per line, skipping blank lines.
func parseBuildings(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Buildings returns the full sorted building catalog.
func (c *Catalog) Buildings() []string {
	return append([]string(nil), c.buildings...)
}

// Departments returns the department selector order.
func (c *Catalog) Departments() []string {
	return append([]string(nil), c.departments...)
}

// DepartmentCode looks up the enrollment code for a department display name.
func (c *Catalog) DepartmentCode(department string) (string, bool) {
	code, ok := departmentCodes[department]
	return code, ok
}

// BuildingOptionsFor returns the building options the selector must offer
// for a department: the restricted list when one is configured, otherwise
// the full catalog. Recomputed on every department change.
func (c *Catalog) BuildingOptionsFor(department string) []string {
	if restricted := departmentBuildings[department]; len(restricted) > 0 {
		return append([]string(nil), restricted...)
	}
	return c.Buildings()
}
