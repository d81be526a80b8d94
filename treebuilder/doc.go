// Package treebuilder walks a parsed expression into the runtime operator
// DAG: it consults the registry for each call, assigns monotone
// optree.OperatorID values in construction order, and shares nodes whose
// canonical expression strings coincide (common-subexpression sharing).
//
// Combined operators are expanded entirely in terms of this same
// machinery: the registered template is substituted with the call's
// integer parameters, reparsed, and built recursively against an
// OpExprMap seeded so that the template's named children resolve to the
// caller's already-built nodes rather than fresh Data nodes. No second
// "sub-builder" type exists.
package treebuilder
