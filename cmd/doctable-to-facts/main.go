// Command doctable-to-facts is an Ansible binary module that parses
// specific tables within a document and returns them as Ansible facts.
//
// Ansible invokes the binary with a single argument: the path of a JSON
// file holding the module parameters. Three parameters are required:
//
//	src     - path of the document to read (.docx, .xlsx, or .html)
//	name    - name to give as reference to the table data in the facts
//	headers - list of table headers identifying the tables to parse
//
// The module writes a single JSON response object to stdout and exits 0
// on success, 1 on failure. On success the response carries facts_json
// with the extracted records under ansible_facts / "table_<name>" and
// the message "Done". The module never changes anything on the target,
// so changed is always false.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	doctable "github.com/mattspera/ansible-doctable-to-facts"
	"github.com/mattspera/ansible-doctable-to-facts/format"
)

func main() {
	resp := run(os.Args[1:])

	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(resp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if resp.Failed {
		os.Exit(1)
	}
}

// run executes one module invocation and produces the response
// envelope. It never writes to stdout itself.
func run(argv []string) response {
	if len(argv) != 1 {
		return failure("expected one argument: path to module args file")
	}

	args, err := readArgs(argv[0])
	if err != nil {
		return failure(err.Error())
	}

	// Capability check before any processing: refuse input this build
	// has no reader for.
	if f := format.Detect(args.Src); !doctable.Supported(f) {
		return failure(fmt.Sprintf("no reader available for %s: unsupported document format", args.Src))
	}

	result, _, err := doctable.Open(args.Src).
		Name(args.Name).
		Headers(args.Headers...).
		AnsibleFacts()
	if err != nil {
		return failure(err.Error())
	}

	return response{
		Changed:   false,
		Message:   "Done",
		FactsJSON: result,
	}
}
