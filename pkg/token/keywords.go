package token

// keywords maps exact-match identifier text to the Kind (or literal
// LiteralValue) it denotes. Anything not in this table that starts with
// a letter or underscore is an ordinary Identifier.
var keywords = map[string]Kind{
	"let":       KeywordLet,
	"const":     KeywordConst,
	"function":  Function,
	"return":    Return,
	"true":      Literal,
	"false":     Literal,
	"null":      Literal,
	"undefined": Literal,
}

// literalKeywords maps the keyword text of the literal keywords above to
// the LiteralValue they produce.
var literalKeywords = map[string]LiteralValue{
	"true":      Boolean(true),
	"false":     Boolean(false),
	"null":      Null(),
	"undefined": Undefined(),
}

// LookupIdentifier classifies text as a keyword Kind (with its literal
// payload, if any) or reports that it is an ordinary identifier.
func LookupIdentifier(text string) (kind Kind, value LiteralValue, isIdentifier bool) {
	if kind, ok := keywords[text]; ok {
		if value, ok := literalKeywords[text]; ok {
			return kind, value, false
		}
		return kind, LiteralValue{}, false
	}
	return Identifier, LiteralValue{}, true
}
