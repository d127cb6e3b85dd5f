package themegen

import (
	"fmt"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseCSSFile reads a stylesheet and returns its flat class rules as
// utilities, in source order. Only single-class selectors are registered;
// anything else (element selectors, at-rules, nesting) is skipped, since a
// css plugin exists to contribute utility classes, not arbitrary CSS.
func ParseCSSFile(path string) ([]Utility, error) {
	// #nosec G304 - path comes from the trusted descriptor
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read css plugin: %w", err)
	}

	return ParseCSS(string(content), path)
}

// ParseCSS lexes CSS content and extracts flat class rules.
func ParseCSS(content string, source string) ([]Utility, error) {
	var utilities []Utility

	lexer := css.NewLexer(parse.NewInputString(content))

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - just break
			break
		}

		// Skip at-rule preludes and blocks wholesale.
		if tt == css.AtKeywordToken {
			skipAtRule(lexer)
			continue
		}

		if tt == css.DelimToken && len(text) > 0 && text[0] == '.' {
			if u, ok := readClassRule(lexer, source); ok {
				utilities = append(utilities, u)
			}
		}
	}

	return utilities, nil
}

// skipAtRule consumes tokens until the end of an at-rule, balancing braces
// so nested blocks are skipped completely.
func skipAtRule(lexer *css.Lexer) {
	depth := 0
	for {
		tt, _ := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return
		case css.SemicolonToken:
			if depth == 0 {
				return
			}
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
			if depth <= 0 {
				return
			}
		}
	}
}

// readClassRule reads a class rule after the leading '.' delimiter. Rules
// whose selector carries pseudo-classes, combinators or extra classes are
// consumed but not registered.
func readClassRule(lexer *css.Lexer, source string) (Utility, bool) {
	tt, nameBytes := lexer.Next()
	if tt != css.IdentToken {
		return Utility{}, false
	}

	selector := string(nameBytes)
	simple := true

	// Walk the rest of the selector up to the declaration block.
	for {
		tt, _ := lexer.Next()
		if tt == css.ErrorToken {
			return Utility{}, false
		}
		if tt == css.LeftBraceToken {
			break
		}
		if tt == css.WhitespaceToken {
			continue
		}
		// Anything between the class name and the brace makes the
		// selector compound: .a.b, .a:hover, .a > b, .a, .b
		simple = false
	}

	decls := readDeclarations(lexer)

	if !simple || len(decls) == 0 {
		return Utility{}, false
	}

	return Utility{
		Selector:     selector,
		Declarations: decls,
		Source:       source,
	}, true
}

// readDeclarations reads property: value pairs until the closing brace.
func readDeclarations(lexer *css.Lexer) Declarations {
	decls := make(Declarations)

	var currentProp string
	var currentVal []string

	flush := func() {
		if currentProp != "" && len(currentVal) > 0 {
			decls[currentProp] = strings.TrimSpace(strings.Join(currentVal, ""))
		}
		currentProp = ""
		currentVal = nil
	}

	for {
		tt, text := lexer.Next()

		if tt == css.ErrorToken || tt == css.RightBraceToken {
			flush()
			break
		}

		switch {
		case tt == css.IdentToken && currentProp == "":
			currentProp = string(text)
		case tt == css.ColonToken && currentProp != "" && len(currentVal) == 0:
			continue
		case tt == css.SemicolonToken:
			flush()
		case currentProp != "":
			currentVal = append(currentVal, string(text))
		}
	}

	return decls
}
