package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/shunting"
)

func main() {
	log.SetFlags(0)
	var (
		inname string
		prec   int
		cfg    config
	)
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.StringVar(&cfg.verb, "fmt", "%g", "result formatting string")
	flag.IntVar(&prec, "p", 0, "precision of calculations in bits (0 for float64)")
	flag.BoolVar(&cfg.rpn, "rpn", false, "read expressions in postfix notation")
	flag.BoolVar(&cfg.echo, "echo", false, "print the postfix form of each expression")
	flag.BoolVar(&cfg.yaml, "yaml", false, "print results as YAML documents")
	flag.Parse()
	if prec < 0 {
		log.Fatalf("precision (%d) must not be negative", prec)
	}
	cfg.prec = uint(prec)

	p := newPrinter(os.Stdout, &cfg)
	f, tty, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		sc := bufio.NewScanner(f)
		for {
			if tty {
				fmt.Fprint(os.Stderr, "> ")
			}
			if !sc.Scan() {
				break
			}
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			if err := p.expr(line); err != nil {
				log.Fatal(err)
			}
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
		if f != os.Stdin {
			if err := f.Close(); err != nil {
				log.Fatal(err)
			}
		}
	}
	for _, arg := range flag.Args() {
		if err := p.expr(arg); err != nil {
			log.Fatal(err)
		}
	}
	if err := p.close(); err != nil {
		log.Fatal(err)
	}
	if p.failed > 0 {
		os.Exit(1)
	}
}

// infile opens the input named by the -in flag. tty is true when the input is
// an interactive terminal.
func infile(inname string, std bool) (f *os.File, tty bool, err error) {
	switch {
	case inname != "" && inname != "-":
		f, err = os.Open(inname)
		return f, false, err
	case inname == "-", std:
		fd := os.Stdin.Fd()
		return os.Stdin, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd), nil
	}
	return nil, false, nil
}

type config struct {
	verb string
	prec uint
	rpn  bool
	echo bool
	yaml bool
}

// result is the outcome of one expression.
type result struct {
	Expr   string `yaml:"expr"`
	RPN    string `yaml:"rpn,omitempty"`
	Result string `yaml:"result,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

func (c *config) eval(s string) result {
	r := result{Expr: s}
	var (
		rpn shunting.RPN
		err error
	)
	if c.rpn {
		rpn = shunting.ParseRPN(s)
	} else {
		rpn, err = shunting.Compile(s)
		if err != nil {
			r.Error = err.Error()
			return r
		}
	}
	r.RPN = rpn.String()
	if c.prec == 0 {
		v, err := rpn.Eval()
		if err != nil {
			r.Error = err.Error()
			return r
		}
		r.Result = fmt.Sprintf(c.verb, v)
		return r
	}
	v, err := rpn.EvalBig(c.prec)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Result = fmt.Sprintf(c.verb, v)
	return r
}

type printer struct {
	w      io.Writer
	cfg    *config
	enc    *yaml.Encoder
	failed int
}

func newPrinter(w io.Writer, cfg *config) *printer {
	p := printer{w: w, cfg: cfg}
	if cfg.yaml {
		p.enc = yaml.NewEncoder(w)
	}
	return &p
}

// expr evaluates one expression and writes its result. The returned error is
// only from writing; evaluation errors are written as results and counted.
func (p *printer) expr(s string) error {
	r := p.cfg.eval(s)
	if r.Error != "" {
		p.failed++
	}
	if p.enc != nil {
		return p.enc.Encode(&r)
	}
	if p.cfg.echo && r.RPN != "" {
		if _, err := fmt.Fprintf(p.w, "%s : ", r.RPN); err != nil {
			return err
		}
	}
	if r.Error != "" {
		_, err := fmt.Fprintln(p.w, r.Error)
		return err
	}
	_, err := fmt.Fprintln(p.w, r.Result)
	return err
}

func (p *printer) close() error {
	if p.enc == nil {
		return nil
	}
	return p.enc.Close()
}
