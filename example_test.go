// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jnode_test

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/creachadair/jnode"
)

func ExampleBuilder() {
	root, err := jnode.NewBuilder().
		StartDict().
		Key("request_id").Value(jnode.IntNode(1)).
		Key("stops").StartArray().
		Value(jnode.StringNode("Biryulyovo")).
		Value(jnode.StringNode("Universam")).
		EndArray().
		Key("curvature").Value(jnode.DoubleNode(1.25)).
		EndDict().
		Build()
	if err != nil {
		log.Fatalf("Build failed: %v", err)
	}
	if err := jnode.PrintNode(os.Stdout, root); err != nil {
		log.Fatalf("Print failed: %v", err)
	}
	// Output:
	// {
	//     "curvature": 1.25,
	//     "request_id": 1,
	//     "stops": [
	//         "Biryulyovo",
	//         "Universam"
	//     ]
	// }
}

func ExampleLoad() {
	doc, err := jnode.Load(strings.NewReader(`{"bus": "256", "stops": 6, "length": 5950.0}`))
	if err != nil {
		log.Fatalf("Load failed: %v", err)
	}
	stats, _ := doc.Root().AsDict()
	for key, v := range stats.All() {
		fmt.Printf("%s: %v (%v)\n", key, v, v.Kind())
	}
	// Output:
	// bus: "256" (string)
	// length: 5950.0 (double)
	// stops: 6 (int)
}

func ExampleLoadString_error() {
	_, err := jnode.LoadString(`{"stops": [1, 2,]}`)
	fmt.Println(err)
	// Output:
	// at 1:16: unexpected ']'
}

func ExamplePrinter() {
	p := jnode.Printer{Indent: 2}
	doc := jnode.NewDocument(jnode.ArrayNode(jnode.IntNode(1), jnode.ArrayNode(jnode.Null())))
	if err := p.Print(os.Stdout, doc); err != nil {
		log.Fatalf("Print failed: %v", err)
	}
	fmt.Println()
	// Output:
	// [
	//   1,
	//   [
	//     null
	//   ]
	// ]
}
