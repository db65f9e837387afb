package tilerecord

import (
	"fmt"
	"io"
)

// Write formats rec in the line-oriented tile record format.
func Write(w io.Writer, rec *Record) error {
	line1 := string(rec.GridCode)
	if rec.Kind == KindNaked {
		line1 += "?"
	}
	for _, p := range rec.Cells {
		line1 += fmt.Sprintf(" %d %d", p.X, p.Y)
	}
	if _, err := fmt.Fprintln(w, line1); err != nil {
		return err
	}
	if rec.Kind == KindNaked {
		return nil
	}

	switch rec.Kind {
	case KindIsohedral:
		_, err := fmt.Fprintf(w, "%c %d\n", byte(rec.Kind), rec.TransitivityClasses)
		return err
	case KindNonTiler:
		line2 := fmt.Sprintf("%c %d %d", byte(rec.Kind), rec.Hc, rec.Hh)
		if rec.HasPatches {
			line2 += " P"
		}
		if _, err := fmt.Fprintln(w, line2); err != nil {
			return err
		}
		if !rec.HasPatches {
			return nil
		}
		if err := writePatch(w, rec.HcPatch); err != nil {
			return err
		}
		if rec.Hh > rec.Hc {
			return writePatch(w, rec.HhPatch)
		}
		return nil
	default:
		_, err := fmt.Fprintf(w, "%c\n", byte(rec.Kind))
		return err
	}
}

func writePatch(w io.Writer, patch []PatchEntry) error {
	if _, err := fmt.Fprintln(w, len(patch)); err != nil {
		return err
	}
	for _, e := range patch {
		_, err := fmt.Fprintf(w, "%d ; <%d,%d,%d,%d,%d,%d>\n",
			e.Level, e.T.A, e.T.B, e.T.C, e.T.D, e.T.E, e.T.F)
		if err != nil {
			return err
		}
	}
	return nil
}
