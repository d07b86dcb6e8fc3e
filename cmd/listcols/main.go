// Command listcols prints the columns declared for tables in a JSON schema document.
package main

import (
	"os"
)

func main() {
	a := newApp()
	err := newRootCmd(a).Execute()
	a.close()
	if err != nil {
		os.Exit(1)
	}
}
