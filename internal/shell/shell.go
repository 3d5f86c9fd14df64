// Package shell implements the interactive PyVengers menu.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cadre-oss/pyvengers/internal/record"
	"github.com/cadre-oss/pyvengers/internal/telemetry"
)

const menu = `PyVengers Menu:
1) Add
2) List
3) Search
4) Exit
`

// Menu choices.
const (
	ChoiceAdd    = "1"
	ChoiceList   = "2"
	ChoiceSearch = "3"
	ChoiceExit   = "4"
)

// errExit ends the loop without surfacing an error to the caller.
var errExit = errors.New("exit")

// Shell is a blocking read-eval-print loop over a record store.
type Shell struct {
	store  *record.Store
	in     *bufio.Reader
	out    io.Writer
	logger *telemetry.Logger
}

// New creates a shell reading choices from in and printing to out.
func New(store *record.Store, in io.Reader, out io.Writer, logger *telemetry.Logger) *Shell {
	if logger == nil {
		logger = telemetry.Discard()
	}
	return &Shell{
		store:  store,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// Run shows the menu until the user exits or input ends. Store errors
// abort the loop and are returned.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, menu)
		choice, err := s.prompt("Choose an option: ")
		if err != nil {
			return exitErr(err)
		}

		if err := s.dispatch(strings.TrimSpace(choice)); err != nil {
			return exitErr(err)
		}
	}
}

func (s *Shell) dispatch(choice string) error {
	switch choice {
	case ChoiceAdd:
		return s.add()
	case ChoiceList:
		return s.list()
	case ChoiceSearch:
		return s.search()
	case ChoiceExit:
		return errExit
	default:
		s.logger.Debug("invalid menu choice", "choice", choice)
		return nil
	}
}

func (s *Shell) add() error {
	name, err := s.prompt("Enter name: ")
	if err != nil {
		return err
	}
	superpower, err := s.prompt("Enter superpower: ")
	if err != nil {
		return err
	}
	mission, err := s.prompt("Enter mission: ")
	if err != nil {
		return err
	}

	if err := s.store.Add(name, superpower, mission); err != nil {
		return err
	}

	fmt.Fprintln(s.out, AddedMessage(name))
	return nil
}

func (s *Shell) list() error {
	records, err := s.store.List()
	if err != nil {
		return err
	}

	PrintList(s.out, records)
	return nil
}

func (s *Shell) search() error {
	query, err := s.prompt("Enter name to search: ")
	if err != nil {
		return err
	}

	matches, err := s.store.Search(query)
	if err != nil {
		return err
	}

	PrintMatches(s.out, query, matches)
	return nil
}

// prompt writes label and reads one raw line without its line terminator.
// A final line without a newline is still returned; io.EOF is returned only
// when nothing was read.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)

	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", errExit
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func exitErr(err error) error {
	if errors.Is(err, errExit) {
		return nil
	}
	return err
}
