package checkhistory

import (
	"fmt"
	"time"

	"xnamath.theprimeagen.com/pkg/propcheck"
)

const DateTimeFormatForSQLite = "2006-01-02 15:04:05"

// PropertyRun is one property of one propcheck run.
type PropertyRun struct {
	RunId      string  `db:"run_id" json:"runId"`
	Property   string  `db:"property" json:"property"`
	Seed       int64   `db:"seed" json:"seed"`
	Samples    int     `db:"samples" json:"samples"`
	Checked    int     `db:"checked" json:"checked"`
	Failed     int     `db:"failed" json:"failed"`
	WorstError float64 `db:"worst_error" json:"worstError"`
	CreatedAt  string  `db:"created_at" json:"createdAt"`
}

func (p *PropertyRun) String() string {
	return fmt.Sprintf("Run(%s): %s checked=%d failed=%d worst=%g at %s", p.RunId, p.Property, p.Checked, p.Failed, p.WorstError, p.CreatedAt)
}

// Store keeps the results of past runs so a regression in worst error can
// be spotted across seeds and commits.
type Store interface {
	Record(runs []PropertyRun) error
	History(property string) ([]PropertyRun, error)
	RunCount() (int, error)
	Close() error
}

func FromReport(runId string, cfg propcheck.Config, report propcheck.Report, at time.Time) []PropertyRun {
	createdAt := at.UTC().Format(DateTimeFormatForSQLite)
	out := make([]PropertyRun, 0, len(report.Results))
	for _, res := range report.Results {
		out = append(out, PropertyRun{
			RunId:      runId,
			Property:   res.Name,
			Seed:       cfg.Seed,
			Samples:    cfg.Samples,
			Checked:    res.Checked,
			Failed:     res.Failed,
			WorstError: res.WorstError,
			CreatedAt:  createdAt,
		})
	}
	return out
}
