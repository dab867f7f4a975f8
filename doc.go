// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jnode implements an in-memory model of JSON values, with a parser,
// a pretty-printer, and a checked builder.
//
// # Values
//
// A Node holds exactly one of the kinds null, bool, int, double, string,
// array, or dict. The IsX methods report which kind a node holds, and the AsX
// methods return its contents, or a *TypeError if the node holds a different
// kind. AsDouble also accepts an int, which it widens to float64.
//
// The keys of a Dict are unique, and iteration with Keys or All is in
// ascending key order, so printed output is deterministic.
//
// # Parsing
//
// Load parses a single document from an io.Reader:
//
//	doc, err := jnode.Load(input)
//	if err != nil {
//	   log.Fatalf("Load failed: %v", err)
//	}
//	root := doc.Root()
//
// Numbers with neither a fraction nor an exponent are parsed as ints, all
// others as doubles. Strings recognize the escapes \r, \n, \t, \\, and \";
// a backslash before any other character is dropped. Unicode escapes are not
// decoded. A repeated dict key replaces the earlier value. Load reports an
// error if anything but whitespace follows the value; LoadNode reads one
// value and leaves the rest of the input alone. A Parser with AllowComments
// also skips comments and a trailing comma in each array or dict.
//
// In case of error, parsing stops and an error of concrete type
// *jnode.ParsingError is returned.
//
// # Printing
//
// Print and PrintNode render values as indented text, four spaces per level
// by default. Use a Printer to change the indentation:
//
//	p := jnode.Printer{Indent: 2}
//	if err := p.Print(os.Stdout, doc); err != nil {
//	   log.Fatalf("Print failed: %v", err)
//	}
//
// # Building
//
// A Builder assembles a value through a sequence of calls, and rejects
// sequences that do not describe a well-formed value:
//
//	root, err := jnode.NewBuilder().
//	   StartDict().
//	      Key("name").Value(jnode.StringNode("Biryulyovo")).
//	      Key("stops").StartArray().
//	         Value(jnode.IntNode(1)).
//	         Value(jnode.IntNode(2)).
//	      EndArray().
//	   EndDict().
//	   Build()
//
// The first illegal call is recorded as a *ProtocolError and reported by
// Build.
package jnode
