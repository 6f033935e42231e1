package regexlib

import "fmt"

// parser turns an infix pattern into an expression tree through a postfix
// intermediate form. Each parser carries its own position counter.
type parser struct {
	lex   *lexer
	alloc positionAllocator
}

func newParser(pat string) *parser { return &parser{lex: newLexer(pat)} }

func precedence(t tokenType) int {
	switch t {
	case tStar:
		return 3
	case tUnion:
		return 2
	case tConcat:
		return 1
	default:
		return 0
	}
}

func (p *parser) parse() (*Node, error) {
	postfix, err := p.infixToPostfix()
	if err != nil {
		return nil, err
	}
	if len(postfix) == 0 {
		return nil, fmt.Errorf("pattern has no terminals")
	}
	return p.fold(postfix)
}

// infixToPostfix is the shunting-yard conversion: literals pass straight
// through, operators wait on a stack until nothing of equal or higher
// precedence sits on top, parentheses bracket subexpressions. Left
// associative throughout.
func (p *parser) infixToPostfix() ([]token, error) {
	var stack, postfix []token

	for tok := p.lex.next(); tok.typ != tEOF; tok = p.lex.next() {
		switch tok.typ {
		case tChar:
			postfix = append(postfix, tok)
		case tLParen:
			stack = append(stack, tok)
		case tRParen:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.typ == tLParen {
					matched = true
					break
				}
				postfix = append(postfix, top)
			}
			if !matched {
				return nil, fmt.Errorf("unbalanced ')'")
			}
		case tStar, tUnion, tConcat:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.typ == tLParen || precedence(tok.typ) > precedence(top.typ) {
					break
				}
				postfix = append(postfix, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case tBrace:
			return nil, fmt.Errorf("reserved character %q", tok.ch)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.typ == tLParen {
			return nil, fmt.Errorf("unbalanced '('")
		}
		postfix = append(postfix, top)
	}
	return postfix, nil
}

// fold reduces the postfix stream to a single tree: literals become terminal
// nodes with fresh positions, operators pop their operands off the working
// stack.
func (p *parser) fold(postfix []token) (*Node, error) {
	var stack []*Node

	pop := func() *Node {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n
	}

	for _, tok := range postfix {
		switch tok.typ {
		case tChar:
			stack = append(stack, &Node{typ: nChar, sym: tok.ch, pos: p.alloc.allocate()})
		case tStar:
			if len(stack) < 1 {
				return nil, fmt.Errorf("'*' is missing its operand")
			}
			stack = append(stack, &Node{typ: nStar, left: pop()})
		case tUnion, tConcat:
			typ, name := nUnion, "'|'"
			if tok.typ == tConcat {
				typ, name = nConcat, "'.'"
			}
			if len(stack) < 2 {
				return nil, fmt.Errorf("%s is missing an operand", name)
			}
			right := pop()
			left := pop()
			stack = append(stack, &Node{typ: typ, left: left, right: right})
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("malformed pattern: %d loose operands", len(stack))
	}
	return stack[0], nil
}
