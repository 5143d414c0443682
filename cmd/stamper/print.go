package main

import (
	"fmt"
	"io"
	"time"

	"github.com/ionut-t/stamper/config"
)

// printStamps renders every binding for ref and returns the first stamp.
// With list set each stamp is written to w as "name<TAB>stamp".
func printStamps(w io.Writer, cfg *config.Config, ref time.Time, list bool) (string, error) {
	var first string

	for i, b := range cfg.Bindings {
		stamp, err := b.Stamp()
		if err != nil {
			return "", fmt.Errorf("binding %q: %w", b.Name, err)
		}

		text := stamp(ref)
		if i == 0 {
			first = text
		}
		if list {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", b.Name, text); err != nil {
				return "", err
			}
		}
	}

	return first, nil
}
