// Package inspect runs fragtext commands against a fragment table and prints
// the results.
package inspect

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/dshills/fragtext/internal/config"
	"github.com/dshills/fragtext/internal/engine/fragment"
	"github.com/dshills/fragtext/internal/logging"
)

// ErrUsage indicates a bad command line: unknown command or wrong arguments.
var ErrUsage = errors.New("usage")

// command is one inspector operation.
type command struct {
	args  []string // argument names, for usage
	about string
	run   func(in *Inspector, args []string) error
}

var commands = map[string]command{
	"render":    {nil, "print the logical text", (*Inspector).render},
	"len":       {nil, "print the byte length", (*Inspector).length},
	"stat":      {nil, "print length, fragment, rune and width counts", (*Inspector).stat},
	"fragments": {nil, "list fragments with their offsets", (*Inspector).fragments},
	"locate":    {[]string{"offset"}, "print the fragment holding a byte", (*Inspector).locate},
	"bytes":     {nil, "list raw bytes", (*Inspector).bytes},
	"runes":     {nil, "list decoded runes", (*Inspector).runes},
	"equal":     {[]string{"text"}, "compare the logical text with text", (*Inspector).equal},
	"hash":      {nil, "print the xxHash64 of the logical text", (*Inspector).hash},
	"width":     {nil, "print the display width", (*Inspector).width},
	"find":      {[]string{"text"}, "print the offset of text, or -1", (*Inspector).find},
	"slice":     {[]string{"start", "end"}, "print bytes [start, end)", (*Inspector).slice},
	"trim":      {nil, "print the text without surrounding space", (*Inspector).trim},
}

// Commands returns usage lines for every command, sorted by name.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		cmd := commands[name]
		usage := name
		for _, a := range cmd.args {
			usage += " <" + a + ">"
		}
		lines = append(lines, fmt.Sprintf("%-22s %s", usage, cmd.about))
	}
	return lines
}

// Inspector prints facts about one table.
type Inspector struct {
	table fragment.Table
	cfg   config.Config
	log   *logging.Logger
	out   io.Writer
}

// New creates an inspector writing to out. A nil logger discards logs.
func New(t fragment.Table, cfg config.Config, log *logging.Logger, out io.Writer) *Inspector {
	if log == nil {
		log = logging.Null()
	}
	return &Inspector{
		table: t,
		cfg:   cfg,
		log:   log.WithComponent("inspect"),
		out:   out,
	}
}

// Run executes the named command.
func (in *Inspector) Run(name string, args []string) error {
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrUsage, name)
	}
	if len(args) != len(cmd.args) {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrUsage, name, len(cmd.args), len(args))
	}
	in.log.Debug("running %s over %d fragment(s), %d byte(s)", name, in.table.FragmentCount(), in.table.Len())
	return cmd.run(in, args)
}

// printText prints t on its own line, quoted if configured.
func (in *Inspector) printText(t fragment.Table) error {
	if in.cfg.Output.Quote {
		_, err := fmt.Fprintf(in.out, "%q\n", t)
		return err
	}
	if _, err := t.WriteTo(in.out); err != nil {
		return err
	}
	_, err := io.WriteString(in.out, "\n")
	return err
}

func (in *Inspector) render(_ []string) error {
	return in.printText(in.table)
}

func (in *Inspector) length(_ []string) error {
	_, err := fmt.Fprintf(in.out, "%d\n", in.table.Len())
	return err
}

func (in *Inspector) stat(_ []string) error {
	runes, decodeErr := in.table.RuneCount()
	if decodeErr != nil {
		in.log.Warn("rune count stopped early: %v", decodeErr)
	}
	_, err := fmt.Fprintf(in.out, "bytes=%d fragments=%d runes=%d width=%d valid=%t\n",
		in.table.Len(), in.table.FragmentCount(), runes, in.table.Width(), decodeErr == nil)
	return err
}

func (in *Inspector) fragments(_ []string) error {
	it := in.table.Fragments()
	for it.Next() {
		if _, err := fmt.Fprintf(in.out, "%d\t%d\t%q\n", it.Index(), it.Offset(), it.Fragment()); err != nil {
			return err
		}
	}
	return nil
}

func (in *Inspector) locate(args []string) error {
	offset, err := parseOffset(args[0])
	if err != nil {
		return err
	}
	pos, err := in.table.Locate(offset)
	if err != nil {
		return err
	}
	b := in.table.Fragment(pos.Fragment)[pos.Offset]
	_, err = fmt.Fprintf(in.out, "fragment=%d offset=%d byte=%q\n", pos.Fragment, pos.Offset, b)
	return err
}

func (in *Inspector) bytes(_ []string) error {
	it := in.table.Bytes()
	for it.Next() {
		var err error
		if in.cfg.Output.Offsets {
			_, err = fmt.Fprintf(in.out, "%d\t0x%02x\n", it.Offset(), it.Byte())
		} else {
			_, err = fmt.Fprintf(in.out, "0x%02x\n", it.Byte())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// runes prints every rune, applying the configured policy to malformed
// sequences.
func (in *Inspector) runes(_ []string) error {
	c := fragment.NewCursor(in.table)
	for {
		offset := c.Offset()
		r, _, err := c.ReadRune()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var derr *fragment.DecodeError
			if !errors.As(err, &derr) {
				return err
			}
			in.log.WithField("offset", derr.Offset).Warn("%v % x", derr.Err, derr.Bytes)
			switch in.cfg.Decode.Policy {
			case config.PolicySkip:
				continue
			case config.PolicyReplace:
				r = utf8.RuneError
			default:
				return err
			}
		}

		if in.cfg.Output.Offsets {
			_, err = fmt.Fprintf(in.out, "%d\t%q\n", offset, r)
		} else {
			_, err = fmt.Fprintf(in.out, "%q\n", r)
		}
		if err != nil {
			return err
		}
	}
}

func (in *Inspector) equal(args []string) error {
	_, err := fmt.Fprintf(in.out, "%t\n", in.table.EqualString(args[0]))
	return err
}

func (in *Inspector) hash(_ []string) error {
	_, err := fmt.Fprintf(in.out, "%016x\n", in.table.Sum64())
	return err
}

func (in *Inspector) width(_ []string) error {
	_, err := fmt.Fprintf(in.out, "width=%d east_asian=%d\n", in.table.Width(), in.table.WidthEastAsian())
	return err
}

func (in *Inspector) find(args []string) error {
	_, err := fmt.Fprintf(in.out, "%d\n", in.table.Index(args[0]))
	return err
}

func (in *Inspector) slice(args []string) error {
	start, err := parseOffset(args[0])
	if err != nil {
		return err
	}
	end, err := parseOffset(args[1])
	if err != nil {
		return err
	}
	view, err := in.table.Slice(start, end)
	if err != nil {
		return err
	}
	return in.printText(view)
}

func (in *Inspector) trim(_ []string) error {
	return in.printText(in.table.TrimSpace())
}

func parseOffset(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: bad offset %q", ErrUsage, s)
	}
	return n, nil
}
