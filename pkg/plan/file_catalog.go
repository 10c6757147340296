package plan

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape of an operator-maintained plan table.
type catalogFile struct {
	Plans []catalogEntry `yaml:"plans"`
}

type catalogEntry struct {
	ID                   string `yaml:"id"`
	Kind                 Kind   `yaml:"kind"`
	SiteLimit            *int64 `yaml:"site_limit,omitempty"`
	MonthlyPageviewLimit *int64 `yaml:"monthly_pageview_limit,omitempty"`
	TeamMemberLimit      *int64 `yaml:"team_member_limit,omitempty"`
}

// NewFileCatalog loads a YAML plan table and returns an in-memory Catalog
// over it. The file is read once; redeploy to pick up catalog changes.
//
// Expected format:
//
//	plans:
//	  - id: price_growth_monthly
//	    kind: standard
//	    site_limit: 50
//	    monthly_pageview_limit: 100000
//	    team_member_limit: 10
//	  - id: price_enterprise_acme
//	    kind: enterprise
func NewFileCatalog(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadCatalog, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.Join(ErrFailedToLoadCatalog, err)
	}

	plans := make([]Plan, 0, len(file.Plans))
	for _, e := range file.Plans {
		plans = append(plans, Plan{
			Kind:                 e.Kind,
			ID:                   e.ID,
			SiteLimit:            e.SiteLimit,
			MonthlyPageviewLimit: e.MonthlyPageviewLimit,
			TeamMemberLimit:      e.TeamMemberLimit,
		})
	}
	return NewInMemCatalog(plans...)
}
