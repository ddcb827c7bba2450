package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/amitger07/yodle-juggle-fest/types"
)

const (
	circuitRecord = "C"
	jugglerRecord = "J"

	maxLineSize = 1 << 20
)

// ParsePopulation reads circuits and jugglers from r.
//
// Each juggler's scores are computed as it is read, against the circuits
// declared above it.
//
// Parameters:
//   - r: Input in the population format
//
// Returns:
//   - *types.Population: Circuits indexed by ID and jugglers in input order
//   - error: *ParseError for the first bad line, or the read error
//
// Example:
//
//	f, err := os.Open("jugglefest.txt")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//	pop, err := format.ParsePopulation(f)
func ParsePopulation(r io.Reader) (*types.Population, error) {
	p := &populationParser{pop: &types.Population{}}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()

		if err := p.parseLine(text); err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read population: %w", err)
	}

	return p.pop, nil
}

type populationParser struct {
	pop *types.Population
}

func (p *populationParser) parseLine(text string) error {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	switch head := fields[0]; {
	case head == circuitRecord:
		return p.parseCircuit(fields[1:])
	case head == jugglerRecord:
		return p.parseJuggler(fields[1:])
	case isRecordID(head, circuitRecord):
		return p.parseCircuit(fields)
	case isRecordID(head, jugglerRecord):
		return p.parseJuggler(fields)
	default:
		return nil
	}
}

// parseCircuit handles "C<id> H<h> E<e> P<p>".
func (p *populationParser) parseCircuit(fields []string) error {
	if len(fields) != 4 {
		return fmt.Errorf("%w: circuit needs an ID and three traits, got %d fields", types.ErrMalformedInput, len(fields))
	}

	id, err := parseID(fields[0], circuitRecord)
	if err != nil {
		return err
	}

	if id != len(p.pop.Circuits) {
		return fmt.Errorf("%w: C%d declared at position %d", types.ErrCircuitIDMismatch, id, len(p.pop.Circuits))
	}

	traits, err := parseTraits(fields[1:4])
	if err != nil {
		return err
	}

	p.pop.Circuits = append(p.pop.Circuits, types.NewCircuit(id, traits))

	return nil
}

// parseJuggler handles "J<id> H<h> E<e> P<p> C<a>,C<b>,...".
func (p *populationParser) parseJuggler(fields []string) error {
	switch {
	case len(fields) < 4:
		return fmt.Errorf("%w: juggler needs an ID and three traits, got %d fields", types.ErrMalformedInput, len(fields))
	case len(fields) == 4:
		return types.ErrNoPreferences
	case len(fields) > 5:
		return fmt.Errorf("%w: unexpected token %q after preferences", types.ErrMalformedInput, fields[5])
	}

	id, err := parseID(fields[0], jugglerRecord)
	if err != nil {
		return err
	}

	traits, err := parseTraits(fields[1:4])
	if err != nil {
		return err
	}

	prefs, err := p.parsePreferences(fields[4])
	if err != nil {
		return err
	}

	p.pop.Jugglers = append(p.pop.Jugglers, types.NewJuggler(id, traits, prefs))

	return nil
}

// parsePreferences resolves a comma-separated preference list. Trailing empty
// entries are dropped; an empty entry anywhere else is malformed.
func (p *populationParser) parsePreferences(token string) ([]*types.Circuit, error) {
	names := strings.Split(token, ",")
	for len(names) > 0 && names[len(names)-1] == "" {
		names = names[:len(names)-1]
	}

	prefs := make([]*types.Circuit, 0, len(names))
	seen := make(map[int]struct{}, len(names))

	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: empty preference in %q", types.ErrMalformedInput, token)
		}

		id, err := parseID(name, circuitRecord)
		if err != nil {
			return nil, err
		}
		if id >= len(p.pop.Circuits) {
			return nil, fmt.Errorf("%w: C%d", types.ErrUnknownCircuit, id)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: C%d", types.ErrDuplicatePreference, id)
		}
		seen[id] = struct{}{}

		prefs = append(prefs, p.pop.Circuits[id])
	}

	if len(prefs) == 0 {
		return nil, types.ErrNoPreferences
	}

	return prefs, nil
}

// parseTraits reads the H, E and P tokens in that order.
func parseTraits(fields []string) (types.Traits, error) {
	h, err := parseTrait(fields[0], "H")
	if err != nil {
		return types.Traits{}, err
	}
	e, err := parseTrait(fields[1], "E")
	if err != nil {
		return types.Traits{}, err
	}
	pz, err := parseTrait(fields[2], "P")
	if err != nil {
		return types.Traits{}, err
	}

	return types.Traits{HandEye: h, Endurance: e, Pizzazz: pz}, nil
}

// parseTrait reads "<prefix><n>" or "<prefix>:<n>".
func parseTrait(token, prefix string) (int64, error) {
	rest, ok := strings.CutPrefix(token, prefix)
	if !ok {
		return 0, fmt.Errorf("%w: expected %s trait, got %q", types.ErrMalformedInput, prefix, token)
	}
	rest = strings.TrimPrefix(rest, ":")

	v, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s trait %q is not a number", types.ErrMalformedInput, prefix, token)
	}

	return v, nil
}

// parseID reads "<prefix><n>" with n >= 0.
func parseID(token, prefix string) (int, error) {
	rest, ok := strings.CutPrefix(token, prefix)
	if !ok {
		return 0, fmt.Errorf("%w: expected %s<id>, got %q", types.ErrMalformedInput, prefix, token)
	}

	id, err := strconv.Atoi(rest)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: bad ID %q", types.ErrMalformedInput, token)
	}

	return id, nil
}

func isRecordID(token, prefix string) bool {
	rest, ok := strings.CutPrefix(token, prefix)
	if !ok || rest == "" {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// WritePopulation writes pop in the population format, circuits first.
//
// The output uses the "C C0 H:7 E:7 P:10" layout and parses back with
// ParsePopulation.
//
// Parameters:
//   - w: Destination
//   - pop: Population to write
//
// Returns:
//   - error: First write error
func WritePopulation(w io.Writer, pop *types.Population) error {
	bw := bufio.NewWriter(w)

	for _, c := range pop.Circuits {
		fmt.Fprintf(bw, "%s C%d %s\n", circuitRecord, c.ID, formatTraits(c.Traits))
	}

	if len(pop.Circuits) > 0 && len(pop.Jugglers) > 0 {
		bw.WriteByte('\n')
	}

	for _, j := range pop.Jugglers {
		prefs := j.Preferences()
		names := make([]string, len(prefs))
		for i, c := range prefs {
			names[i] = "C" + strconv.Itoa(c.ID)
		}
		fmt.Fprintf(bw, "%s J%d %s %s\n", jugglerRecord, j.ID, formatTraits(j.Traits), strings.Join(names, ","))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write population: %w", err)
	}

	return nil
}

func formatTraits(t types.Traits) string {
	return fmt.Sprintf("H:%d E:%d P:%d", t.HandEye, t.Endurance, t.Pizzazz)
}
