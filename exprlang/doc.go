// Package exprlang turns a factor expression string into a typed,
// canonicalised abstract syntax tree.
//
// Grammar:
//
//	expr   := field | number | string | call
//	field  := '@' ident
//	number := integer | decimal
//	string := quoted literal
//	call   := ident '(' [expr (',' expr)*] ')'
//	ident  := [A-Za-z_][A-Za-z0-9_]*
//
// Whitespace is insignificant. A number without a decimal point parses as
// an integer literal; with one, as a double literal. Canonicalize renders a
// parsed Expr back to a deterministic string form — stripped of redundant
// whitespace and parenthesisation — which the treebuilder package uses as the
// common-subexpression key.
//
// This is a small hand-written lexer plus recursive-descent parser rather
// than a parser-combinator library: the grammar above is four productions
// deep with one genuinely recursive rule (call arguments), and a
// self-referential parser-combinator grammar needs a forward-declaration
// idiom that is easy to get subtly wrong without a compiler to catch it. A
// direct recursive-descent parser over this grammar is straightforward to
// hand-verify instead.
package exprlang
