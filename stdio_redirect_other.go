//go:build !unix

package main

import "os"

// Best-effort variant for platforms without Dup2: swapping the os.Stdout
// and os.Stderr values captures the generator's progress and error prints,
// but not runtime-level stderr output such as panic traces.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
