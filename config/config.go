package config

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/heeschnum/heesch/geom"
)

// OrientationSubset names a subset of a grid's symmetries, selected by
// the sat subcommand's -translations / -rotations flags.
// FilterTransforms applies it to a list of transforms; the cloud and
// solver packages do not consult it and always place copies under the
// grid's full orientation set.
type OrientationSubset int

const (
	// AllOrientations permits every symmetry the grid family defines
	// (rotations and reflections both).
	AllOrientations OrientationSubset = iota
	// TranslationsOnly permits only the identity linear part: copies
	// may be translated but never rotated or reflected.
	TranslationsOnly
	// RotationsOnly permits proper (determinant +1) symmetries,
	// excluding reflections.
	RotationsOnly
)

// RunConfig is the fully resolved, immutable configuration the sat
// subcommand runs under. Build one with NewRunConfig; the zero
// value is not meaningful on its own since it predates default
// resolution.
type RunConfig struct {
	// LevelCap bounds how many corona levels the solver will attempt
	// before giving up and reporting Inconclusive. Defaults to 7.
	LevelCap int

	// Orientations is the symmetry subset selected on the command line
	// (see OrientationSubset for where it is and is not applied).
	Orientations OrientationSubset

	// Timeout bounds a single SAT query. Zero means no timeout.
	Timeout time.Duration

	// Isohedral enables the translation-pair shortcut before falling
	// back to full corona search.
	Isohedral bool

	// RequireHoleFreeOuter mirrors sat's -hh flag. The solver prefers a
	// hole-free outer corona over a hole-admitting one whether or not it
	// is set; in sat it makes each corona query return its patch.
	RequireHoleFreeOuter bool

	// Reduce enables placement-count reduction optimizations before
	// clause generation.
	Reduce bool

	// UpdateOnly restricts record processing to records currently
	// classified Unknown or Inconclusive, leaving settled records
	// untouched.
	UpdateOnly bool

	// ShowPatches controls whether corona patches are emitted
	// alongside the summary record.
	ShowPatches bool

	// OutFile is the destination path for sat's -o flag. Empty means
	// stdout.
	OutFile string

	// LogLevel and LogFormat configure the zerolog logger built by
	// Logger. The cmd/heesch subcommands build their logger from the
	// root command's --log-level/--log-format flags instead.
	LogLevel  zerolog.Level
	LogFormat string
}

// RunOption configures a RunConfig during construction.
type RunOption func(*RunConfig)

// WithLevelCap overrides the default corona-search level cap.
func WithLevelCap(n int) RunOption {
	return func(c *RunConfig) { c.LevelCap = n }
}

// WithTranslationsOnly selects the TranslationsOnly subset.
func WithTranslationsOnly() RunOption {
	return func(c *RunConfig) { c.Orientations = TranslationsOnly }
}

// WithRotationsOnly selects the RotationsOnly subset of proper
// (non-reflecting) symmetries.
func WithRotationsOnly() RunOption {
	return func(c *RunConfig) { c.Orientations = RotationsOnly }
}

// WithTimeout bounds each SAT query's wall-clock budget.
func WithTimeout(d time.Duration) RunOption {
	return func(c *RunConfig) { c.Timeout = d }
}

// WithIsohedral enables the translation-pair shortcut.
func WithIsohedral() RunOption {
	return func(c *RunConfig) { c.Isohedral = true }
}

// WithHoleFreeOuter requires a hole-free outer corona when one exists.
func WithHoleFreeOuter() RunOption {
	return func(c *RunConfig) { c.RequireHoleFreeOuter = true }
}

// WithReduce enables placement-reduction optimizations.
func WithReduce() RunOption {
	return func(c *RunConfig) { c.Reduce = true }
}

// WithUpdateOnly restricts processing to Unknown/Inconclusive records.
func WithUpdateOnly() RunOption {
	return func(c *RunConfig) { c.UpdateOnly = true }
}

// WithShowPatches enables patch emission alongside summary records.
func WithShowPatches() RunOption {
	return func(c *RunConfig) { c.ShowPatches = true }
}

// WithOutFile sets the destination path for generated records.
func WithOutFile(path string) RunOption {
	return func(c *RunConfig) { c.OutFile = path }
}

// WithLogLevel sets the shared logger's minimum level.
func WithLogLevel(level zerolog.Level) RunOption {
	return func(c *RunConfig) { c.LogLevel = level }
}

// WithLogFormat sets the shared logger's output format ("json" or
// "console").
func WithLogFormat(format string) RunOption {
	return func(c *RunConfig) { c.LogFormat = format }
}

// NewRunConfig resolves opts against the documented defaults: a level
// cap of 7, every orientation permitted, no timeout, console logging
// at info level.
func NewRunConfig(opts ...RunOption) *RunConfig {
	c := &RunConfig{
		LevelCap:     7,
		Orientations: AllOrientations,
		LogLevel:     zerolog.InfoLevel,
		LogFormat:    "console",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FilterTransforms narrows all down to the subset c.Orientations
// permits. Translations pass every filter since the identity linear
// part is both proper and translational.
func (c *RunConfig) FilterTransforms(all []geom.Transform) []geom.Transform {
	switch c.Orientations {
	case TranslationsOnly:
		out := make([]geom.Transform, 0, len(all))
		for _, T := range all {
			if T.IsTranslation() {
				out = append(out, T)
			}
		}
		return out
	case RotationsOnly:
		out := make([]geom.Transform, 0, len(all))
		for _, T := range all {
			if T.Det() == 1 {
				out = append(out, T)
			}
		}
		return out
	default:
		return all
	}
}

// Logger builds the shared zerolog.Logger for c's level and format.
func (c *RunConfig) Logger(w interface{ Write([]byte) (int, error) }) zerolog.Logger {
	var logger zerolog.Logger
	if c.LogFormat == "json" {
		logger = zerolog.New(w)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: w})
	}
	return logger.Level(c.LogLevel).With().Timestamp().Logger()
}
