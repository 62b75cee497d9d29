// Package console is the interactive operator loop: it prints the menu, reads
// one command at a time, calls exactly one core.Graph operation per command,
// and saves a snapshot after every command that changed the graph.
//
// Cancelling the Run context interrupts a pending prompt. A command whose input
// was already complete has been applied, and its snapshot is still written.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/roadledger/core"
	"github.com/katalvlaran/roadledger/metrics"
	"github.com/katalvlaran/roadledger/snapshot"
	log "github.com/sirupsen/logrus"
)

// Menu choices.
const (
	choiceAddCities = iota + 1
	choiceAddRoad
	choiceSetBudget
	choiceRename
	choiceSearch
	choiceShowCities
	choiceShowRoads
	choiceShowAll
	choiceExit
)

// Operation labels used for logging and metrics.
const (
	OpAddCity   = "add_city"
	OpAddRoad   = "add_road"
	OpSetBudget = "set_budget"
	OpRename    = "rename_city"
	OpSearch    = "find_city"
)

const menu = `
Menu:
1. Add new city(ies)
2. Add roads between cities
3. Add the budget for roads
4. Edit city
5. Search for a city
6. Display cities
7. Display roads
8. Display recorded data on the console
9. Exit
`

// Console runs the operator loop over one Graph.
type Console struct {
	graph    *core.Graph
	in       *bufio.Scanner
	out      io.Writer
	sink     snapshot.Sink
	logger   log.FieldLogger
	recorder *metrics.Recorder

	lines <-chan inputLine
}

// inputLine is one line read from the operator, or the error that ended input.
type inputLine struct {
	text string
	err  error
}

// Option configures a Console.
type Option func(*Console)

// WithSink sets where snapshots are saved. Without a sink nothing is persisted.
func WithSink(s snapshot.Sink) Option {
	return func(c *Console) { c.sink = s }
}

// WithLogger sets the structured logger.
func WithLogger(l log.FieldLogger) Option {
	return func(c *Console) { c.logger = l }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r *metrics.Recorder) Option {
	return func(c *Console) { c.recorder = r }
}

// New returns a Console reading commands from in and writing prompts to out.
func New(g *core.Graph, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		graph:  g,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.recorder.Size(g.CityCount(), g.RoadCount())

	return c
}

// Save persists the current state through the configured sink.
// A failure is reported and logged; it never undoes the change that led to it.
// Cancellation of ctx does not reach the sink: a change already applied in
// memory is always offered for persistence.
func (c *Console) Save(ctx context.Context) error {
	c.recorder.Size(c.graph.CityCount(), c.graph.RoadCount())
	if c.sink == nil {
		return nil
	}
	if err := c.sink.Save(context.WithoutCancel(ctx), c.graph.View()); err != nil {
		c.recorder.SnapshotFailed()
		c.logger.WithError(err).Error("snapshot not saved")
		fmt.Fprintf(c.out, "Error: could not save snapshot: %v\n", err)
		return err
	}

	return nil
}

// Run loops until the operator exits, input ends, or ctx is cancelled.
// End of input returns nil; cancellation returns ctx.Err().
// Snapshot failures are reported and do not stop the loop.
func (c *Console) Run(ctx context.Context) error {
	if c.lines == nil {
		c.lines = c.startReader(ctx)
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(c.out, menu)
		choice, err := c.readInt(ctx, "Enter your choice: ")
		if err != nil {
			return eofIsExit(err)
		}

		switch choice {
		case choiceAddCities:
			err = c.addCities(ctx)
		case choiceAddRoad:
			err = c.addRoad(ctx)
		case choiceSetBudget:
			err = c.setBudget(ctx)
		case choiceRename:
			err = c.rename(ctx)
		case choiceSearch:
			err = c.search(ctx)
		case choiceShowCities:
			RenderCities(c.out, c.graph.View())
		case choiceShowRoads:
			RenderRoadMatrix(c.out, c.graph.View())
		case choiceShowAll:
			RenderAll(c.out, c.graph.View())
		case choiceExit:
			fmt.Fprintln(c.out, "Exiting program.")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid choice. Please try again.")
		}
		if err != nil {
			return eofIsExit(err)
		}
	}
}

func (c *Console) addCities(ctx context.Context) error {
	n, err := c.readInt(ctx, "Enter the number of cities to add: ")
	if err != nil {
		return err
	}
	added := 0
	for i := 0; i < n; i++ {
		name, err := c.readLine(ctx, fmt.Sprintf("Enter the name for city %d: ", i+1))
		if err != nil {
			if added > 0 {
				c.Save(ctx)
			}
			return err
		}
		city, err := c.graph.AddCity(name)
		c.record(OpAddCity, err, log.Fields{"city": name})
		if err != nil {
			fmt.Fprintf(c.out, "City %q not added: %s\n", name, Explain(err))
			continue
		}
		added++
		fmt.Fprintf(c.out, "City %s added with index %d\n", city.Name, city.Index)
	}
	if added > 0 {
		c.Save(ctx)
	}

	return nil
}

func (c *Console) readPair(ctx context.Context) (string, string, error) {
	a, err := c.readLine(ctx, "Enter the name of the first city: ")
	if err != nil {
		return "", "", err
	}
	b, err := c.readLine(ctx, "Enter the name of the second city: ")
	if err != nil {
		return "", "", err
	}

	return a, b, nil
}

func (c *Console) addRoad(ctx context.Context) error {
	a, b, err := c.readPair(ctx)
	if err != nil {
		return err
	}
	err = c.graph.AddRoad(a, b)
	c.record(OpAddRoad, err, log.Fields{"road": a + "-" + b})
	if err != nil {
		fmt.Fprintf(c.out, "Road between %s and %s not added: %s\n", a, b, explainPair(err))
		return nil
	}
	fmt.Fprintf(c.out, "Road added between %s and %s\n", a, b)
	c.Save(ctx)

	return nil
}

func (c *Console) setBudget(ctx context.Context) error {
	a, b, err := c.readPair(ctx)
	if err != nil {
		return err
	}
	amount, err := c.readFloat(ctx, "Enter the budget for the road (in billion RWF): ")
	if err != nil {
		return err
	}
	err = c.graph.SetBudget(a, b, amount)
	c.record(OpSetBudget, err, log.Fields{"road": a + "-" + b, "budget": amount})
	if err != nil {
		fmt.Fprintf(c.out, "Budget for %s-%s not set: %s\n", a, b, explainPair(err))
		return nil
	}
	fmt.Fprintf(c.out, "Budget of %s billion RWF added for road between %s and %s\n",
		snapshot.FormatBudget(amount), a, b)
	c.Save(ctx)

	return nil
}

func (c *Console) rename(ctx context.Context) error {
	oldName, err := c.readLine(ctx, "Enter the current city name: ")
	if err != nil {
		return err
	}
	newName, err := c.readLine(ctx, "Enter the new city name: ")
	if err != nil {
		return err
	}
	err = c.graph.RenameCity(oldName, newName)
	c.record(OpRename, err, log.Fields{"city": oldName, "new_name": newName})
	if err != nil {
		fmt.Fprintf(c.out, "City %s not renamed: %s\n", oldName, Explain(err))
		return nil
	}
	fmt.Fprintf(c.out, "City renamed from %s to %s\n", oldName, newName)
	c.Save(ctx)

	return nil
}

func (c *Console) search(ctx context.Context) error {
	idx, err := c.readInt(ctx, "Enter the city index to search: ")
	if err != nil {
		return err
	}
	city, err := c.graph.FindByIndex(idx)
	c.record(OpSearch, err, log.Fields{"index": idx})
	if err != nil {
		fmt.Fprintf(c.out, "City with index %d not found.\n", idx)
		return nil
	}
	fmt.Fprintf(c.out, "City found: %d: %s\n", city.Index, city.Name)

	return nil
}

// record logs and counts one operation outcome.
func (c *Console) record(op string, err error, fields log.Fields) {
	c.recorder.Operation(op, err)
	entry := c.logger.WithFields(fields).WithField("op", op)
	if err != nil {
		entry.WithError(err).Debug("operation rejected")
		return
	}
	entry.Debug("operation applied")
}

// startReader scans input on its own goroutine so a prompt can be abandoned
// when ctx is cancelled. The goroutine ends at end of input, or with the first
// line it reads after cancellation.
func (c *Console) startReader(ctx context.Context) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		for c.in.Scan() {
			select {
			case lines <- inputLine{text: strings.TrimRight(c.in.Text(), "\r")}:
			case <-ctx.Done():
				return
			}
		}
		err := c.in.Err()
		if err == nil {
			err = io.EOF
		}
		select {
		case lines <- inputLine{err: err}:
		case <-ctx.Done():
		}
	}()

	return lines
}

// readLine prompts and returns the next input line without its line ending.
func (c *Console) readLine(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// readInt prompts until the operator enters an integer.
func (c *Console) readInt(ctx context.Context, prompt string) (int, error) {
	for {
		line, err := c.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(c.out, "Invalid number, please try again.")
	}
}

// readFloat prompts until the operator enters a number.
func (c *Console) readFloat(ctx context.Context, prompt string) (float64, error) {
	for {
		line, err := c.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(c.out, "Invalid number, please try again.")
	}
}

func eofIsExit(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Explain turns a core error into the operator-facing reason.
func Explain(err error) string {
	switch {
	case errors.Is(err, core.ErrEmptyName):
		return "city name is empty"
	case errors.Is(err, core.ErrDuplicateName):
		return "a city with that name already exists"
	case errors.Is(err, core.ErrCityNotFound):
		return "city not found"
	case errors.Is(err, core.ErrSameName):
		return "new name is the same as the current name"
	case errors.Is(err, core.ErrSelfLoop):
		return "a road must connect two different cities"
	case errors.Is(err, core.ErrDuplicateRoad):
		return "the road already exists"
	case errors.Is(err, core.ErrNoRoad):
		return "no road exists between the cities"
	case errors.Is(err, core.ErrNegativeBudget):
		return "budget must not be negative"
	case errors.Is(err, core.ErrInvalidBudget):
		return "budget must be a finite number"
	default:
		return err.Error()
	}
}

// explainPair is Explain for commands that name two cities.
func explainPair(err error) string {
	if errors.Is(err, core.ErrCityNotFound) {
		return "one or both cities not found"
	}

	return Explain(err)
}
