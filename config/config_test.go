package config_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/heeschnum/heesch/config"
	"github.com/heeschnum/heesch/geom"
)

func TestNewRunConfigDefaults(t *testing.T) {
	c := config.NewRunConfig()

	if c.LevelCap != 7 {
		t.Errorf("LevelCap = %d, want 7", c.LevelCap)
	}
	if c.Orientations != config.AllOrientations {
		t.Errorf("Orientations = %v, want AllOrientations", c.Orientations)
	}
	if c.Timeout != 0 {
		t.Errorf("Timeout = %v, want 0", c.Timeout)
	}
	if c.LogFormat != "console" {
		t.Errorf("LogFormat = %q, want console", c.LogFormat)
	}
}

func TestRunOptionsOverrideDefaults(t *testing.T) {
	c := config.NewRunConfig(
		config.WithLevelCap(3),
		config.WithTimeout(5*time.Second),
		config.WithIsohedral(),
		config.WithHoleFreeOuter(),
		config.WithReduce(),
		config.WithUpdateOnly(),
		config.WithOutFile("out.txt"),
		config.WithLogLevel(zerolog.DebugLevel),
		config.WithLogFormat("json"),
	)

	if c.LevelCap != 3 {
		t.Errorf("LevelCap = %d, want 3", c.LevelCap)
	}
	if c.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", c.Timeout)
	}
	if !c.Isohedral || !c.RequireHoleFreeOuter || !c.Reduce || !c.UpdateOnly {
		t.Error("boolean flags not all set")
	}
	if c.OutFile != "out.txt" {
		t.Errorf("OutFile = %q, want out.txt", c.OutFile)
	}
	if c.LogLevel != zerolog.DebugLevel {
		t.Errorf("LogLevel = %v, want Debug", c.LogLevel)
	}
	if c.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", c.LogFormat)
	}
}

func TestTranslationsOnlyAndRotationsOnlyAreMutuallyExclusiveFlags(t *testing.T) {
	t1 := config.NewRunConfig(config.WithTranslationsOnly())
	if t1.Orientations != config.TranslationsOnly {
		t.Errorf("Orientations = %v, want TranslationsOnly", t1.Orientations)
	}

	t2 := config.NewRunConfig(config.WithRotationsOnly())
	if t2.Orientations != config.RotationsOnly {
		t.Errorf("Orientations = %v, want RotationsOnly", t2.Orientations)
	}
}

func TestFilterTransformsTranslationsOnlyKeepsOnlyIdentity(t *testing.T) {
	c := config.NewRunConfig(config.WithTranslationsOnly())
	all := []geom.Transform{
		geom.Identity,
		{A: 0, B: -1, D: 1, E: 0},
		{A: -1, E: -1},
	}

	got := c.FilterTransforms(all)
	if len(got) != 1 || got[0] != geom.Identity {
		t.Errorf("FilterTransforms = %v, want only Identity", got)
	}
}

func TestFilterTransformsRotationsOnlyExcludesReflections(t *testing.T) {
	c := config.NewRunConfig(config.WithRotationsOnly())
	rotate90 := geom.Transform{A: 0, B: -1, D: 1, E: 0}
	reflectX := geom.Transform{A: 1, E: -1}

	got := c.FilterTransforms([]geom.Transform{geom.Identity, rotate90, reflectX})
	for _, T := range got {
		if T.Det() != 1 {
			t.Errorf("FilterTransforms kept a non-rotation transform %+v", T)
		}
	}
	if len(got) != 2 {
		t.Errorf("got %d transforms, want 2", len(got))
	}
}

func TestFilterTransformsAllPassesEverythingThrough(t *testing.T) {
	c := config.NewRunConfig()
	all := []geom.Transform{geom.Identity, {A: 1, E: -1}}
	got := c.FilterTransforms(all)
	if len(got) != len(all) {
		t.Errorf("got %d transforms, want %d", len(got), len(all))
	}
}
