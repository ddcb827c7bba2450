package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/amitger07/yodle-juggle-fest/types"
)

// AssignmentLine is one parsed line of the assignment format.
type AssignmentLine struct {
	CircuitID int
	Members   []AssignedJuggler
}

// AssignedJuggler is one member of a circuit as rendered by Juggler.String.
type AssignedJuggler struct {
	JugglerID   int
	Preferences []PreferenceScore
}

// PreferenceScore is a "C<id>:<score>" pair.
type PreferenceScore struct {
	CircuitID int
	Score     int64
}

// WriteAssignment writes circuits in the assignment format.
//
// Circuits are written in descending ID order, one per line, each rendered by
// Circuit.String and terminated by "\n".
//
// Members are separated by commas. Within a member, the "C<id>:<score>"
// pairs of its preference list are separated by single spaces, not commas:
//
//	C2 J6 C2:128 C1:31 C0:188,J3 C2:120 C0:171 C1:31
//
// Parameters:
//   - w: Destination
//   - circuits: Circuits indexed by ID
//
// Returns:
//   - int64: Bytes written
//   - error: First write error
func WriteAssignment(w io.Writer, circuits []*types.Circuit) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	for i := len(circuits) - 1; i >= 0; i-- {
		bw.WriteString(circuits[i].String())
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return cw.n, fmt.Errorf("failed to write assignment: %w", err)
	}

	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}

// ParseAssignment reads the assignment format back.
//
// Parameters:
//   - r: Input in the assignment format
//
// Returns:
//   - []AssignmentLine: Lines in input order
//   - error: *ParseError wrapping ErrMalformedInput, or the read error
func ParseAssignment(r io.Reader) ([]AssignmentLine, error) {
	var lines []AssignmentLine

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	n := 0
	for scanner.Scan() {
		n++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		line, err := parseAssignmentLine(text)
		if err != nil {
			return nil, &ParseError{Line: n, Text: text, Err: err}
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assignment: %w", err)
	}

	return lines, nil
}

func parseAssignmentLine(text string) (AssignmentLine, error) {
	head, rest, _ := strings.Cut(strings.TrimSpace(text), " ")

	id, err := parseID(head, circuitRecord)
	if err != nil {
		return AssignmentLine{}, err
	}

	line := AssignmentLine{CircuitID: id}
	if rest == "" {
		return line, nil
	}

	for _, member := range strings.Split(rest, ",") {
		m, err := parseAssignedJuggler(member)
		if err != nil {
			return AssignmentLine{}, err
		}
		line.Members = append(line.Members, m)
	}

	return line, nil
}

func parseAssignedJuggler(text string) (AssignedJuggler, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return AssignedJuggler{}, fmt.Errorf("%w: empty member", types.ErrMalformedInput)
	}

	id, err := parseID(fields[0], jugglerRecord)
	if err != nil {
		return AssignedJuggler{}, err
	}

	member := AssignedJuggler{
		JugglerID:   id,
		Preferences: make([]PreferenceScore, 0, len(fields)-1),
	}

	for _, pair := range fields[1:] {
		name, score, ok := strings.Cut(pair, ":")
		if !ok {
			return AssignedJuggler{}, fmt.Errorf("%w: expected C<id>:<score>, got %q", types.ErrMalformedInput, pair)
		}

		circuitID, err := parseID(name, circuitRecord)
		if err != nil {
			return AssignedJuggler{}, err
		}

		v, err := strconv.ParseInt(score, 10, 64)
		if err != nil {
			return AssignedJuggler{}, fmt.Errorf("%w: bad score in %q", types.ErrMalformedInput, pair)
		}

		member.Preferences = append(member.Preferences, PreferenceScore{CircuitID: circuitID, Score: v})
	}

	return member, nil
}
