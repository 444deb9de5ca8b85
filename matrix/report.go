package matrix

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteTable writes one line per result: the case, the value written and
// what an ambient-only reader gets back.
func WriteTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "AMBIENT\tEXPLICIT\tUUID\tWRITTEN\tAMBIENT READ\tCHECK")
	for _, r := range results {
		written := "-"
		if r.Err == nil {
			written = r.Written.String()
		}

		var read string
		switch {
		case r.Err != nil:
			read = "-"
		case r.AmbientReadErr != nil:
			read = "error: " + r.AmbientReadErr.Error()
		case r.AmbientRead == r.UUID:
			read = r.AmbientRead.String()
		default:
			read = r.AmbientRead.String() + " (wrong)"
		}

		check := "ok"
		if err := r.Check(); err != nil {
			check = "FAIL"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Ambient, r.Explicit, r.UUID, written, read, check)
	}

	return tw.Flush()
}
