// Package shell is the interactive front end of graphsearch: it reads
// one-letter commands and their numeric arguments, drives a core.Graph and
// prints what the traversals emit.
//
// Commands (case-insensitive):
//
//	z          initialize the graph
//	v          insert a vertex
//	e SRC DEST insert an edge
//	d START    reset visited flags, depth-first search
//	b START    reset visited flags, breadth-first search
//	p          print the adjacency lists
//	q          release the lists and quit
//
// Input is tokenised on whitespace, so arguments may share the command's
// line or follow on later lines. End of input behaves like q.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphsearch/bfs"
	"github.com/katalvlaran/graphsearch/core"
	"github.com/katalvlaran/graphsearch/dfs"
)

const banner = `

----------------------------------------------------------------
                   Graph Searches
----------------------------------------------------------------
 Initialize  Graph    = z
 Insert Vertex        = v       Insert Edge            = e
 Depth First Search   = d       Breadth First Search   = b
 Print Graph          = p       Quit                   = q
----------------------------------------------------------------
`

// Messages written for rejected commands.
const (
	msgInvalidCommand = "\n       >>>>>   Invalid Command!   <<<<<     "
	msgOutOfBounds    = "Graph: Vertex number out of bounds."
)

// Shell owns one Graph and the streams it talks over.
type Shell struct {
	graph *core.Graph
	in    *bufio.Scanner
	out   *bufio.Writer
	log   *slog.Logger
	menu  bool
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Shell) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMenu toggles the banner and argument prompts. Scripts usually turn
// them off so the output holds only results.
func WithMenu(on bool) Option {
	return func(s *Shell) { s.menu = on }
}

// New returns a Shell that reads commands from in and writes to out.
func New(g *core.Graph, in io.Reader, out io.Writer, opts ...Option) *Shell {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	s := &Shell{
		graph: g,
		in:    sc,
		out:   bufio.NewWriter(out),
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		menu:  true,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// errQuit ends the loop normally.
var errQuit = errors.New("quit")

// Run executes commands until q, end of input, a read/write failure or
// ctx cancellation. q and end of input return nil.
func (s *Shell) Run(ctx context.Context) error {
	s.log.Debug("shell started", "capacity", s.graph.Capacity())
	for {
		if err := ctx.Err(); err != nil {
			s.out.Flush()
			return err
		}
		if s.menu {
			s.out.WriteString(banner)
			s.out.WriteString("Command = ")
		}
		if err := s.out.Flush(); err != nil {
			return fmt.Errorf("shell: write: %w", err)
		}

		tok, err := s.next()
		if err == nil {
			err = s.dispatch(tok)
		}
		if errors.Is(err, io.EOF) {
			s.log.Debug("end of input")
			err = s.quit()
		}
		if errors.Is(err, errQuit) {
			if ferr := s.out.Flush(); ferr != nil {
				return fmt.Errorf("shell: write: %w", ferr)
			}
			return nil
		}
		if err != nil {
			s.out.Flush()
			return err
		}
	}
}

// next returns the next whitespace-separated token, or io.EOF.
func (s *Shell) next() (string, error) {
	if s.in.Scan() {
		return s.in.Text(), nil
	}
	if err := s.in.Err(); err != nil {
		return "", fmt.Errorf("shell: read: %w", err)
	}

	return "", io.EOF
}

// dispatch runs one command. A nil return means "keep going", including
// after graph errors, which are reported to the user.
func (s *Shell) dispatch(tok string) error {
	s.log.Debug("command", "token", tok)
	switch strings.ToLower(tok) {
	case "z":
		s.graph.Initialize()
		s.log.Info("graph initialized")
	case "v":
		return s.insertVertex()
	case "e":
		return s.insertEdge()
	case "d":
		return s.search("DFS", func(start int, onVisit func(v, depth int) error) error {
			_, err := dfs.DFS(s.graph, start, dfs.WithOnVisit(onVisit))
			return err
		})
	case "b":
		return s.search("BFS", func(start int, onVisit func(v, depth int) error) error {
			_, err := bfs.BFS(s.graph, start, bfs.WithOnVisit(onVisit))
			return err
		})
	case "p":
		// Print writes straight through; bufio.Writer keeps the first error.
		s.graph.Print(s.out)
	case "q":
		return s.quit()
	default:
		s.log.Warn("invalid command", "token", tok)
		s.println(msgInvalidCommand)
	}

	return nil
}

func (s *Shell) insertVertex() error {
	v, err := s.graph.InsertVertex()
	if err != nil {
		if !errors.Is(err, core.ErrCapacityExceeded) {
			return err
		}
		s.log.Warn("vertex rejected", "err", err)
		s.println(fmt.Sprintf("Graph: Cannot insert more than %d vertices.", s.graph.Capacity()))
		return nil
	}
	s.log.Info("vertex inserted", "vertex", v)

	return nil
}

func (s *Shell) insertEdge() error {
	s.prompt("Enter source and destination vertex: ")
	src, ok, err := s.nextInt()
	if !ok || err != nil {
		return err
	}
	dest, ok, err := s.nextInt()
	if !ok || err != nil {
		return err
	}

	if err = s.graph.InsertEdge(src, dest); err != nil {
		return s.graphError("edge rejected", err)
	}
	s.log.Info("edge inserted", "src", src, "dest", dest)

	return nil
}

// search resets the visited flags, reads the start vertex and runs walk,
// printing every emitted vertex.
func (s *Shell) search(name string, walk func(start int, onVisit func(v, depth int) error) error) error {
	s.graph.ResetVisited()
	s.prompt("Enter starting vertex for " + name + ": ")
	start, ok, err := s.nextInt()
	if !ok || err != nil {
		return err
	}

	emitted := 0
	err = walk(start, func(v, _ int) error {
		emitted++
		s.println("Visited " + strconv.Itoa(v))
		return nil
	})
	if err != nil {
		return s.graphError(name+" rejected", err)
	}
	s.log.Info(name+" finished", "start", start, "visited", emitted)

	return nil
}

func (s *Shell) quit() error {
	s.graph.Release()
	s.log.Debug("graph released", "vertices", s.graph.VertexCount())

	return errQuit
}

// nextInt reads a vertex number. ok is false when the token was not a
// number; the user has been told and the command is abandoned.
func (s *Shell) nextInt() (n int, ok bool, err error) {
	tok, err := s.next()
	if err != nil {
		return 0, false, err
	}
	n, err = strconv.Atoi(tok)
	if err != nil {
		s.log.Warn("invalid vertex number", "token", tok)
		s.println(fmt.Sprintf("Graph: Invalid vertex number %q.", tok))
		return 0, false, nil
	}

	return n, true, nil
}

// graphError reports recoverable core errors; anything else is returned.
func (s *Shell) graphError(msg string, err error) error {
	if errors.Is(err, core.ErrVertexOutOfBounds) {
		s.log.Warn(msg, "err", err)
		s.println(msgOutOfBounds)
		return nil
	}

	return err
}

func (s *Shell) prompt(text string) {
	if s.menu {
		s.out.WriteString(text)
	}
}

func (s *Shell) println(line string) {
	s.out.WriteString(line)
	s.out.WriteByte('\n')
}
