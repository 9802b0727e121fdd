// Package shell drives the interactive menu session over a line-based
// reader, normally stdin.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/psdsmon/psdsmon/internal/backend"
	"github.com/psdsmon/psdsmon/internal/pager"
	"github.com/psdsmon/psdsmon/internal/process"
	"github.com/psdsmon/psdsmon/internal/system"
	"github.com/psdsmon/psdsmon/internal/view"
)

const menuWidth = 50

// Factory builds fresh collectors from a new probe. The shell calls it at
// startup and again on every refresh, so a refresh is a full re-probe and
// never reuses old state.
type Factory func() (*process.Collector, *system.Collector, backend.Capabilities)

// Shell is one interactive monitor session.
type Shell struct {
	factory  Factory
	in       *bufio.Scanner
	out      io.Writer
	pageSize int
	clear    bool

	procs *process.Collector
	sys   *system.Collector
	caps  backend.Capabilities
}

// New creates a shell reading commands from in and writing to out. With
// clear set, the process view wipes the terminal between pages.
func New(factory Factory, in io.Reader, out io.Writer, pageSize int, clear bool) *Shell {
	return &Shell{
		factory:  factory,
		in:       bufio.NewScanner(in),
		out:      out,
		pageSize: pageSize,
		clear:    clear,
	}
}

// Run drives the menu until the user exits or input ends.
func (s *Shell) Run() error {
	s.procs, s.sys, s.caps = s.factory()

	fmt.Fprintln(s.out, "PS & DS System Monitor")
	fmt.Fprintln(s.out, "Cross-platform Process and System Status Tool")
	if s.caps.Kind != backend.KindGopsutil {
		fmt.Fprintf(s.out, "\nNote: introspection library not available, using the %s fallback.\n", s.caps.Kind)
	}

	for {
		s.printMenu()

		choice, ok := s.readLine("Enter your choice (1-5): ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.showProcesses()
		case "2":
			s.showSystem()
		case "3":
			s.showProcesses()
			s.showSystem()
		case "4":
			s.refresh()
		case "5":
			fmt.Fprintln(s.out, "\nExiting PS & DS System Monitor. Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please enter 1-5.")
		}

		if !s.pause() {
			return nil
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, strings.Repeat("=", menuWidth))
	fmt.Fprintln(s.out, "PS & DS SYSTEM MONITOR")
	fmt.Fprintln(s.out, strings.Repeat("=", menuWidth))
	fmt.Fprintln(s.out, "1. PS - View Process Status")
	fmt.Fprintln(s.out, "2. DS - View Detailed System Status")
	fmt.Fprintln(s.out, "3. Both - View PS & DS Together")
	fmt.Fprintln(s.out, "4. Refresh/Update Information")
	fmt.Fprintln(s.out, "5. Exit")
	fmt.Fprintln(s.out, strings.Repeat("-", menuWidth))
}

// showProcesses renders the paged process table and handles navigation
// until the user quits back to the menu.
func (s *Shell) showProcesses() {
	list, err := s.procs.List()
	if err != nil {
		fmt.Fprintf(s.out, "Error getting processes: %v\n", err)
		return
	}
	if list.Total == 0 {
		fmt.Fprintln(s.out, "No process information available.")
		return
	}

	pg := pager.New(list.Processes, s.pageSize)
	for {
		if s.clear {
			view.ClearScreen(s.out)
		}
		view.RenderProcessPage(s.out, pg)

		input, ok := s.readLine("\nEnter choice: ")
		if !ok {
			return
		}
		dir, valid := pager.ParseDirection(input)
		if !valid {
			continue
		}
		if dir == pager.Quit {
			return
		}
		pg.Advance(dir)
	}
}

func (s *Shell) showSystem() {
	view.RenderSystemReport(s.out, s.sys.Snapshot())
}

// refresh re-probes the host and rebuilds both collectors.
func (s *Shell) refresh() {
	fmt.Fprintln(s.out, "\nRefreshing system information...")
	s.procs, s.sys, s.caps = s.factory()
	fmt.Fprintln(s.out, "Information updated.")
}

func (s *Shell) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Shell) pause() bool {
	fmt.Fprint(s.out, "\nPress Enter to continue...")
	return s.in.Scan()
}
