package main

import "fmt"
import "os"

import "go.uber.org/multierr"

// Writes data to the named file, or to stdout if the name is empty.
func writeOutput(fname string, data []byte) (err error) {
	if len(fname) == 0 {
		_, err = os.Stdout.Write(data)
		return err
	}
	out, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
	}
	defer func() {
		err = multierr.Append(err, out.Close())
	}()
	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write '%s': %w", fname, err)
	}
	return nil
}
