// Package pipeline runs survey rows through validation, section geometry and
// volume integration.
package pipeline

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/alexiusacademia/goearth/internal/norms"
	"github.com/alexiusacademia/goearth/internal/section"
	"github.com/alexiusacademia/goearth/internal/station"
	"github.com/alexiusacademia/goearth/internal/volume"
)

// Config declares every policy a run depends on
type Config struct {
	SlopePolicy         station.SlopePolicy
	DefaultSlopeAngle   float64 // degrees, used by the lenient policy
	BaselineCoefficient float64 // area coefficient where h1 = 0
	Rule                volume.Rule

	// OnStation, if set, is called after each row has been processed.
	OnStation func(done, total int)

	// Logger receives per-row diagnostics. Nil means no logging.
	Logger *zap.Logger
}

// DefaultConfig is lenient validation with end-area integration
func DefaultConfig() Config {
	return Config{
		SlopePolicy:         station.Lenient,
		DefaultSlopeAngle:   norms.DefaultSlopeAngle,
		BaselineCoefficient: norms.BaselineCoefficient,
		Rule:                volume.EndArea,
	}
}

// StationResult is one station that survived validation and geometry
type StationResult struct {
	Record  station.Record
	Section section.CrossSection
	Label   string // km+mmm chainage label
}

// Warning is a row that was skipped
type Warning struct {
	Row      int
	Chainage string
	Err      error
}

func (w Warning) Error() string {
	return w.Err.Error()
}

func (w Warning) Unwrap() error {
	return w.Err
}

// Result is the outcome of one run
type Result struct {
	Stations []StationResult
	Report   *volume.Report
	Warnings []Warning
}

// StationAbortError wraps a row error that stops the whole run under the
// strict slope policy
type StationAbortError struct {
	Row int
	Err error
}

func (e *StationAbortError) Error() string {
	return fmt.Sprintf("run aborted at row %d: %v", e.Row, e.Err)
}

func (e *StationAbortError) Unwrap() error {
	return e.Err
}

// Run processes rows in order. Invalid rows are skipped and reported as
// warnings; under the strict policy an invalid slope aborts the run. The
// surviving stations are integrated in input order.
//
// When no row survives, Run returns the partial result (with its warnings)
// together with volume.ErrNoStations.
func Run(rows []station.RawRow, cfg Config) (*Result, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	opts := station.Options{
		Policy:            cfg.SlopePolicy,
		DefaultSlopeAngle: cfg.DefaultSlopeAngle,
	}
	builder := section.Builder{BaselineCoefficient: cfg.BaselineCoefficient}

	result := &Result{}
	for i, raw := range rows {
		sr, err := processRow(raw, opts, builder)
		if err != nil {
			if abortsRun(err, cfg.SlopePolicy) {
				log.Error("aborting run", zap.Int("row", raw.Row), zap.Error(err))
				return nil, &StationAbortError{Row: raw.Row, Err: err}
			}
			log.Warn("skipping row",
				zap.Int("row", raw.Row),
				zap.String("chainage", raw.Cells[station.ColChainage]),
				zap.Error(err))
			result.Warnings = append(result.Warnings, Warning{
				Row:      raw.Row,
				Chainage: raw.Cells[station.ColChainage],
				Err:      err,
			})
		} else {
			if sr.Record.SlopeDefaulted {
				log.Debug("cutting slope defaulted",
					zap.Int("row", raw.Row),
					zap.Float64("angle", sr.Record.SlopeAngle))
			}
			result.Stations = append(result.Stations, sr)
		}

		if cfg.OnStation != nil {
			cfg.OnStation(i+1, len(rows))
		}
	}

	if len(result.Stations) == 0 {
		return result, volume.ErrNoStations
	}

	pairs := make([]volume.Station, len(result.Stations))
	for i, sr := range result.Stations {
		pairs[i] = volume.Station{Chainage: sr.Record.Chainage, Area: sr.Section.Area}
	}

	report, err := volume.Integrate(pairs, cfg.Rule)
	if err != nil {
		var ne *volume.NonMonotonicChainageError
		if errors.As(err, &ne) {
			row := result.Stations[ne.Index].Record.Row
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		return nil, err
	}
	result.Report = report

	log.Info("run complete",
		zap.Int("stations", len(result.Stations)),
		zap.Int("skipped", len(result.Warnings)),
		zap.Stringer("rule", report.Rule),
		zap.Float64("total_volume", report.TotalVolume))

	return result, nil
}

func processRow(raw station.RawRow, opts station.Options, builder section.Builder) (StationResult, error) {
	rec, err := station.Validate(raw, opts)
	if err != nil {
		return StationResult{}, err
	}

	cs, err := builder.Build(rec)
	if err != nil {
		var ge *section.GeometryComputationError
		var de *section.DegenerateSlopeError
		if errors.As(err, &ge) || errors.As(err, &de) {
			err = fmt.Errorf("row %d, chainage %s: %w", rec.Row, rec.ChainageText, err)
		}
		return StationResult{}, err
	}

	return StationResult{
		Record:  rec,
		Section: cs,
		Label:   station.Label(rec.ChainageText),
	}, nil
}

// abortsRun reports whether err must stop the run under policy
func abortsRun(err error, policy station.SlopePolicy) bool {
	if policy != station.Strict {
		return false
	}
	var se *station.InvalidSlopeError
	var de *section.DegenerateSlopeError
	return errors.As(err, &se) || errors.As(err, &de)
}

// Areas returns the per-station areas in order
func (r *Result) Areas() []float64 {
	out := make([]float64, len(r.Stations))
	for i, s := range r.Stations {
		out[i] = s.Section.Area
	}
	return out
}
