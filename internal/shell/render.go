package shell

import (
	"fmt"
	"io"

	"github.com/cadre-oss/pyvengers/internal/record"
)

// Messages shared by the menu and the one-shot commands.
const (
	EmptyListMessage = "No PyVengers yet! Add one now."
	ListHeader       = "PyVengers List:"
)

// NoMatchMessage is printed when a search finds nothing.
func NoMatchMessage(query string) string {
	return fmt.Sprintf("No PyVenger found containing the name '%s'.", query)
}

// AddedMessage confirms a successful add.
func AddedMessage(name string) string {
	return fmt.Sprintf("PyVenger '%s' added successfully!", name)
}

// PrintRecord writes one labeled record block.
func PrintRecord(w io.Writer, r record.Record) {
	fmt.Fprintf(w, "Name: %s\n", r.Name)
	fmt.Fprintf(w, "Superpower: %s\n", r.Superpower)
	fmt.Fprintf(w, "Mission: %s\n", r.Mission)
	fmt.Fprintln(w)
}

// PrintList renders the full collection, or the empty-collection message.
func PrintList(w io.Writer, records []record.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, EmptyListMessage)
		return
	}

	fmt.Fprintln(w, ListHeader)
	for _, r := range records {
		PrintRecord(w, r)
	}
}

// PrintMatches renders search results, or the no-match message.
func PrintMatches(w io.Writer, query string, matches []record.Record) {
	if len(matches) == 0 {
		fmt.Fprintln(w, NoMatchMessage(query))
		return
	}

	for _, r := range matches {
		PrintRecord(w, r)
	}
}
