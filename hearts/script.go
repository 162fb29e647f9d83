package hearts

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// A strategy script describes a TreeStrategy as text, so alternate
// opponents can be composed without new code. Example:
//
//	lead: suit spades ? lowest : suit clubs ? lowest : lowest
//	follow: under ? highest : lowest
//	discard: card queen of spades ? take queen of spades : highest
//	pass: card queen of spades ? take queen of spades : count hearts 3 ? highest : highest
//
// Each section is one expression: either a leaf (highest, lowest,
// take CARD, none) or a check followed by '?' pass-expression ':'
// fail-expression. The follow section is instantiated once per suit;
// the keyword "led" inside it stands for the suit being followed.

type scriptFile struct {
	Sections []*scriptSection `@@+`
}

type scriptSection struct {
	Name string      `@("lead" | "follow" | "discard" | "pass") ":"`
	Expr *scriptExpr `@@`
}

type scriptExpr struct {
	Check *scriptCheck `( @@ "?"`
	Pass  *scriptExpr  `  @@ ":"`
	Fail  *scriptExpr  `  @@ )`
	Leaf  *scriptLeaf  `| @@`
}

type scriptCheck struct {
	Under bool        `  @"under"`
	Count *suitCount  `| "count" @@`
	Card  *namedCard  `| "card" @@`
	Value *valueCheck `| "value" @@`
	Suit  string      `| "suit" @("clubs" | "diamonds" | "spades" | "hearts" | "led")`
}

type suitCount struct {
	Suit string `@("clubs" | "diamonds" | "spades" | "hearts")`
	Max  int    `@Int`
}

type valueCheck struct {
	Op    string `@("<" "=" | ">" "=" | "<" | ">" | "=")`
	Value string `@("two" | "three" | "four" | "five" | "six" | "seven" | "eight" | "nine" | "ten" | "jack" | "queen" | "king" | "ace" | Int)`
}

type namedCard struct {
	Value string `@("two" | "three" | "four" | "five" | "six" | "seven" | "eight" | "nine" | "ten" | "jack" | "queen" | "king" | "ace" | Int)`
	Suit  string `"of" @("clubs" | "diamonds" | "spades" | "hearts")`
}

type scriptLeaf struct {
	Highest bool       `  @"highest"`
	Lowest  bool       `| @"lowest"`
	None    bool       `| @"none"`
	Take    *namedCard `| "take" @@`
}

var scriptParser = participle.MustBuild[scriptFile](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{"whitespace", `[\s]+`},
		{"comment", `#[^\n]*`},
		{"Ident", `[a-zA-Z]\w*`},
		{"Int", `\d+`},
		{"Punct", `[?:<>=]`},
	})),
	participle.UseLookahead(2),
)

// ParseStrategy compiles a strategy script into a TreeStrategy.
// Missing sections fall back to the stock trees.
func ParseStrategy(src string) (*TreeStrategy, error) {
	file, err := scriptParser.ParseString("", strings.ToLower(src))
	if err != nil {
		return nil, err
	}
	t := DefaultTreeStrategy()
	for _, sec := range file.Sections {
		switch sec.Name {
		case "lead":
			node, err := sec.Expr.node(NoSuit)
			if err != nil {
				return nil, err
			}
			t.Lead = node
		case "follow":
			follow := make(map[Suit]Node, len(Suits))
			for _, s := range Suits {
				node, err := sec.Expr.node(s)
				if err != nil {
					return nil, err
				}
				follow[s] = node
			}
			t.Follow = follow
		case "discard":
			node, err := sec.Expr.node(NoSuit)
			if err != nil {
				return nil, err
			}
			t.Discard = node
		case "pass":
			node, err := sec.Expr.node(NoSuit)
			if err != nil {
				return nil, err
			}
			t.Pass = node
		}
	}
	return t, nil
}

// node lowers a parsed expression into tree nodes. led names the suit
// substituted for the "led" keyword in follow sections.
func (e *scriptExpr) node(led Suit) (Node, error) {
	if e.Leaf != nil {
		return e.Leaf.node()
	}
	pass, err := e.Pass.node(led)
	if err != nil {
		return nil, err
	}
	fail, err := e.Fail.node(led)
	if err != nil {
		return nil, err
	}
	c := e.Check
	switch {
	case c.Under:
		return UnderTopCheck{Suit: led, Pass: pass, Fail: fail}, nil
	case c.Count != nil:
		s, err := parseSuit(c.Count.Suit, led)
		if err != nil {
			return nil, err
		}
		return CountCheck{Suit: s, Max: c.Count.Max, Pass: pass, Fail: fail}, nil
	case c.Card != nil:
		s, v, err := c.Card.card(led)
		if err != nil {
			return nil, err
		}
		return CardCheck{Suit: s, Value: v, Pass: pass, Fail: fail}, nil
	case c.Value != nil:
		v, err := parseValue(c.Value.Value)
		if err != nil {
			return nil, err
		}
		cmp, err := parseCmp(c.Value.Op)
		if err != nil {
			return nil, err
		}
		return ValueCheck{Value: v, Cmp: cmp, Pass: pass, Fail: fail}, nil
	case c.Suit != "":
		s, err := parseSuit(c.Suit, led)
		if err != nil {
			return nil, err
		}
		return SuitCheck{Suit: s, Pass: pass, Fail: fail}, nil
	}
	return nil, fmt.Errorf("empty check")
}

func (l *scriptLeaf) node() (Node, error) {
	switch {
	case l.Highest:
		return HighestLeaf{}, nil
	case l.Lowest:
		return LowestLeaf{}, nil
	case l.None:
		return nil, nil
	case l.Take != nil:
		s, v, err := l.Take.card(NoSuit)
		if err != nil {
			return nil, err
		}
		return CardLeaf{Suit: s, Value: v}, nil
	}
	return nil, fmt.Errorf("empty leaf")
}

func (n *namedCard) card(led Suit) (Suit, Value, error) {
	s, err := parseSuit(n.Suit, led)
	if err != nil {
		return NoSuit, 0, err
	}
	v, err := parseValue(n.Value)
	if err != nil {
		return NoSuit, 0, err
	}
	return s, v, nil
}

func parseSuit(name string, led Suit) (Suit, error) {
	switch name {
	case "clubs":
		return Clubs, nil
	case "diamonds":
		return Diamonds, nil
	case "spades":
		return Spades, nil
	case "hearts":
		return Hearts, nil
	case "led":
		if led == NoSuit {
			return NoSuit, fmt.Errorf("led is only valid inside follow")
		}
		return led, nil
	}
	return NoSuit, fmt.Errorf("unknown suit %q", name)
}

func parseValue(name string) (Value, error) {
	names := map[string]Value{
		"two": Two, "three": Three, "four": Four, "five": Five,
		"six": Six, "seven": Seven, "eight": Eight, "nine": Nine,
		"ten": Ten, "jack": Jack, "queen": Queen, "king": King, "ace": Ace,
		"2": Two, "3": Three, "4": Four, "5": Five, "6": Six, "7": Seven,
		"8": Eight, "9": Nine, "10": Ten,
	}
	if v, ok := names[name]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("unknown value %q", name)
}

func parseCmp(op string) (Cmp, error) {
	switch op {
	case "=":
		return CmpEq, nil
	case "<":
		return CmpLt, nil
	case "<=":
		return CmpLe, nil
	case ">":
		return CmpGt, nil
	case ">=":
		return CmpGe, nil
	}
	return 0, fmt.Errorf("unknown comparison %q", op)
}
