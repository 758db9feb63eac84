package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ismaili-ziad/GP2/diagnostics"
	"github.com/ismaili-ziad/GP2/gpconfig"
	"github.com/ismaili-ziad/GP2/graph"
	"github.com/ismaili-ziad/GP2/gptext"
	"github.com/ismaili-ziad/GP2/label"
	"github.com/ismaili-ziad/GP2/snapshot"
)

// NewRunCommand returns the "run" subcommand, which replays a script of
// graph operations read from a file (or stdin, with "-"). Output comes from
// the script's own print, printverbose and validate commands.
func NewRunCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run [script]",
		Short: "Replay a script of node/edge/snapshot operations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limits, err := gpconfig.Load(configPath)
			if err != nil {
				return err
			}

			var r io.Reader
			if args[0] == "-" {
				r = os.Stdin
			} else {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			sink, err := diagnostics.NewDefaultSink(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			e := newExecutor(graph.NewGraph(graph.WithLimits(limits)), sink, cmd.OutOrStdout())

			return e.run(r)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML ceilings config file")

	return cmd
}

type executor struct {
	g     *graph.Graph
	stack *snapshot.Stack
	sink  diagnostics.Sink
	out   io.Writer
	nodes []*graph.Node
	edges []*graph.Edge
}

func newExecutor(g *graph.Graph, sink diagnostics.Sink, out io.Writer) *executor {
	return &executor{g: g, stack: snapshot.NewStack(), sink: sink, out: out}
}

func (e *executor) run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := e.exec(strings.Fields(line)); err != nil {
			e.sink.Log(diagnostics.LevelError, "command failed", diagnostics.String("line", line), diagnostics.Err(err))
			return err
		}
	}

	return scanner.Err()
}

func (e *executor) exec(fields []string) error {
	switch fields[0] {
	case "node":
		root := len(fields) > 1 && fields[1] == "root"
		n, err := e.g.AddNode(root, label.EmptyLabel())
		if err != nil {
			return err
		}
		e.nodes = append(e.nodes, n)
		e.sink.Log(diagnostics.LevelInfo, "node added", diagnostics.Int("index", n.Index()))

	case "edge":
		if len(fields) < 3 {
			return fmt.Errorf("edge: need source and target indices")
		}
		src, err := e.nodeAt(fields[1])
		if err != nil {
			return err
		}
		tgt, err := e.nodeAt(fields[2])
		if err != nil {
			return err
		}
		bidirectional := len(fields) > 3 && fields[3] == "bidirectional"
		ed, err := e.g.AddEdge(bidirectional, label.EmptyLabel(), src, tgt)
		if err != nil {
			return err
		}
		e.edges = append(e.edges, ed)
		e.sink.Log(diagnostics.LevelInfo, "edge added", diagnostics.Int("index", ed.Index()))

	case "removenode":
		idx, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		return e.g.RemoveNode(idx)

	case "removeedge":
		idx, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		return e.g.RemoveEdge(idx)

	case "relabelnode":
		n, err := e.nodeAt(fields[1])
		if err != nil {
			return err
		}
		lbl, err := parseIntLabel(fields[2:])
		if err != nil {
			return err
		}
		return e.g.RelabelNode(n, lbl, true, false)

	case "togglerootnode":
		n, err := e.nodeAt(fields[1])
		if err != nil {
			return err
		}
		return e.g.RelabelNode(n, label.EmptyLabel(), false, true)

	case "snapshot":
		if len(fields) < 2 {
			return fmt.Errorf("snapshot: need push or restore")
		}
		switch fields[1] {
		case "push":
			e.stack.Push(e.g)
			e.sink.Log(diagnostics.LevelInfo, "snapshot pushed", diagnostics.Int("depth", e.stack.Len()))
		case "restore":
			prior, err := e.stack.Restore(e.g)
			if err != nil {
				return err
			}
			e.g = prior
			e.sink.Log(diagnostics.LevelInfo, "snapshot restored", diagnostics.Int("depth", e.stack.Len()))
		default:
			return fmt.Errorf("snapshot: unknown subcommand %q", fields[1])
		}

	case "validate":
		ok, err := graph.Validate(e.g)
		if !ok {
			e.sink.Console(fmt.Sprintf("invalid: %v", err))
			return err
		}
		e.sink.Console("valid")

	case "print":
		e.sink.Console(gptext.Print(e.g))

	case "printverbose":
		e.sink.Console(gptext.PrintVerbose(e.g))

	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}

	return nil
}

func (e *executor) nodeAt(field string) (*graph.Node, error) {
	idx, err := strconv.Atoi(field)
	if err != nil {
		return nil, err
	}

	return e.g.Node(idx)
}

func parseIntLabel(tokens []string) (label.Label, error) {
	if len(tokens) == 0 {
		return label.EmptyLabel(), nil
	}
	atoms := make([]label.Atom, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return label.Label{}, fmt.Errorf("relabelnode: %q is not an integer atom: %w", tok, err)
		}
		atoms[i] = label.IntAtom(v)
	}

	return label.Label{List: atoms}, nil
}
