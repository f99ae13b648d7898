package describe

import "github.com/alecthomas/participle/v2"

// Textual description format, e.g.:
//
//	states q0, q1, q2;
//	alphabet a, b;
//	start q0;
//	accept q2;
//	edge q0 a q1;
//	edge q1 eps q2;
//
// "eps" on an edge marks an epsilon transition, mirroring the EPS token of
// the record format.

type dslDocument struct {
	Decls []*dslDecl `parser:"@@*"`
}

type dslDecl struct {
	States   *dslStates   `parser:"@@"`
	Alphabet *dslAlphabet `parser:"| @@"`
	Start    *dslStart    `parser:"| @@"`
	Accept   *dslAccept   `parser:"| @@"`
	Edge     *dslEdge     `parser:"| @@"`
}

type dslStates struct {
	Names []string `parser:"'states' @Ident (',' @Ident)* ';'"`
}

type dslAlphabet struct {
	Symbols []string `parser:"'alphabet' @Ident (',' @Ident)* ';'"`
}

type dslStart struct {
	Name string `parser:"'start' @Ident ';'"`
}

type dslAccept struct {
	Names []string `parser:"'accept' @Ident (',' @Ident)* ';'"`
}

type dslEdge struct {
	From   string `parser:"'edge' @Ident"`
	Symbol string `parser:"@Ident"`
	To     string `parser:"@Ident ';'"`
}

var dslParser = participle.MustBuild[dslDocument]()

// ParseDSL parses the textual description format into a Description.
func ParseDSL(src string) (*Description, error) {
	doc, err := dslParser.ParseString("description", src)
	if err != nil {
		return nil, err
	}

	d := &Description{}
	for _, decl := range doc.Decls {
		switch {
		case decl.States != nil:
			d.States = append(d.States, decl.States.Names...)
		case decl.Alphabet != nil:
			d.Alphabet = append(d.Alphabet, decl.Alphabet.Symbols...)
		case decl.Start != nil:
			d.InitialState = decl.Start.Name
		case decl.Accept != nil:
			d.AcceptingStates = append(d.AcceptingStates, decl.Accept.Names...)
		case decl.Edge != nil:
			sym := decl.Edge.Symbol
			if sym == "eps" {
				sym = EpsilonToken
			}
			d.Transitions = append(d.Transitions, Transition{
				From:   decl.Edge.From,
				To:     decl.Edge.To,
				Symbol: sym,
			})
		}
	}
	return d, nil
}
