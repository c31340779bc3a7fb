package formatter

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/avltree"
	"github.com/npillmayer/uax/uax11"
	"github.com/xlab/treeprint"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth  int            // available width of the output device, in en
	ValueWidth int            // values wider than this are truncated; 0 means LineWidth/3
	Colors     bool           // color nodes by their balance
	Context    *uax11.Context // context for measuring widths; nil means uax11.LatinContext
}

// missing is printed for an absent child of an inner node.
const missing = "·"

// Print outputs a tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive). Config.Context
// will also be created based on heuristics from the user environment.
func Print(tree *avltree.Tree, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Fprint(os.Stdout, tree, config)
}

// Fprint outputs a tree to w. It is safe to pass a nil config, which will
// result in a default configuration without colors.
func Fprint(w io.Writer, tree *avltree.Tree, config *Config) error {
	if w == nil {
		return fmt.Errorf("illegal argument: nil writer")
	}
	_, err := io.WriteString(w, Format(tree, config))
	return err
}

// Format returns the indented text representation of a tree.
func Format(tree *avltree.Tree, config *Config) string {
	if config == nil {
		config = &Config{LineWidth: 65}
	}
	f := newPrinter(config)
	if tree.Empty() {
		return missing + "\n"
	}
	root := tree.Root()
	out := treeprint.NewWithRoot(f.label(root))
	out.SetMetaValue(meta(root))
	f.children(out, root)
	tracer().P("format", "console").Debugf("formatted tree of size %d", tree.Size())
	return out.String()
}

// --- Printer ---------------------------------------------------------------

type printer struct {
	width   int
	context *uax11.Context
	palette map[balance]*color.Color
}

// balance classifies a node by the rank differences to its children.
type balance int8

const (
	even     balance = iota // (1,1)
	leaning                 // (1,2) or (2,1)
	violated                // anything else
)

func newPrinter(config *Config) *printer {
	p := &printer{
		width:   config.ValueWidth,
		context: config.Context,
		palette: makeDefaultPalette(),
	}
	if p.width <= 0 {
		p.width = config.LineWidth / 3
	}
	if p.width <= 0 {
		p.width = 20
	}
	if p.context == nil {
		p.context = uax11.LatinContext
	}
	for _, c := range p.palette {
		if config.Colors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func makeDefaultPalette() map[balance]*color.Color {
	return map[balance]*color.Color{
		even:     color.New(color.FgGreen),
		leaning:  color.New(color.FgBlue),
		violated: color.New(color.FgRed, color.Bold),
	}
}

func (p *printer) children(branch treeprint.Tree, n *avltree.Node) {
	if n.Left() == nil && n.Right() == nil {
		return
	}
	for _, child := range []*avltree.Node{n.Left(), n.Right()} {
		switch {
		case child == nil:
			branch.AddNode(missing)
		case child.Left() == nil && child.Right() == nil:
			branch.AddMetaNode(meta(child), p.label(child))
		default:
			sub := branch.AddMetaBranch(meta(child), p.label(child))
			p.children(sub, child)
		}
	}
}

func (p *printer) label(n *avltree.Node) string {
	s := fmt.Sprintf("%d: %s", n.Key(), truncate(n.Value(), p.width, p.context))
	return p.palette[classify(n)].Sprint(s)
}

func meta(n *avltree.Node) string {
	return fmt.Sprintf("h=%d s=%d", n.Height(), n.Size())
}

func classify(n *avltree.Node) balance {
	l, r := n.Height()-n.Left().Height(), n.Height()-n.Right().Height()
	switch {
	case l == 1 && r == 1:
		return even
	case l == 1 && r == 2, l == 2 && r == 1:
		return leaning
	}
	return violated
}

// --- Terminal --------------------------------------------------------------

// ConfigFromTerminal creates a configuration from the properties of stdout.
// Colors are switched on for interactive terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 65}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colors = true
		if w, _, err := term.GetSize(fd); err == nil && w > 10 {
			config.LineWidth = w
		}
	}
	config.ValueWidth = config.LineWidth / 3
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
